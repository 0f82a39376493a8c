// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchorrecord

import (
	"github.com/credano/anchord/identifier"
	"github.com/credano/anchord/status"
)

// MaxMemoLength - the ledger's transaction memo limit in bytes
const MaxMemoLength = 28

// memo operation tags
const (
	createTag = "anchor:c:"
	updateTag = "anchor:u:"
)

// number of identifier characters carried in a memo
const memoIdentifierLength = 16

// CreateMemo - memo tag for an anchoring transaction
func CreateMemo(id identifier.Identifier, st status.Status) string {
	return memo(createTag, id, st)
}

// UpdateMemo - memo tag for a status update transaction
func UpdateMemo(id identifier.Identifier, st status.Status) string {
	return memo(updateTag, id, st)
}

func memo(tag string, id identifier.Identifier, st status.Status) string {
	encoded := id.String()
	if len(encoded) > memoIdentifierLength {
		encoded = encoded[:memoIdentifierLength]
	}

	code, err := st.Code()
	if nil != err {
		code = "?"
	}

	m := tag + encoded + ":" + code
	if len(m) > MaxMemoLength {
		m = m[:MaxMemoLength]
	}
	return m
}
