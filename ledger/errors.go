// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/credano/anchord/fault"
)

// errors that keep their class when they cross the RPC boundary
//
// net/rpc flattens errors to strings, so replies are matched back to
// the sentinel by message before any fallback classification
var wireErrors = []error{
	fault.ErrAccountNotFound,
	fault.ErrIdentifierNotFound,
	fault.ErrSequenceConflict,
	fault.ErrSubmissionFailed,
	fault.ErrInsufficientFunds,
	fault.ErrUnrecognizedRecordEncoding,
	fault.ErrChainEndpointMismatch,
	fault.ErrRateLimiting,
}

// translate - map an RPC reply error to its sentinel, or classify it
// with the supplied fallback
func translate(err error, fallback error) error {
	if nil == err {
		return nil
	}
	message := err.Error()
	for _, sentinel := range wireErrors {
		if sentinel.Error() == message {
			return sentinel
		}
	}
	return fallback
}
