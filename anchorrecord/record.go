// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package anchorrecord - the ledger-stored representation of an anchor
//
// two stored encodings coexist: the current versioned compact JSON
// with single letter field names and the legacy value that is just
// the raw credential hash with no structure (implied Active status);
// decode never drops information between the known encodings and an
// unrecognized value is a parse error
package anchorrecord

import (
	"encoding/json"

	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/status"
)

// size bounds imposed by the ledger's per-entry value limit
const (
	MaxValueLength = 256 // bytes per stored data-entry value
	MaxHashLength  = 128 // hash text is truncated here, never rejected
)

// recognized versions of the compact encoding
const currentVersion = 1

// AnchorRecord - the durable hash and status of one credential
type AnchorRecord struct {
	Hash      string        `json:"hash"`
	Status    status.Status `json:"status"`
	Timestamp int64         `json:"timestamp"`
}

// wire form of the compact encoding
type compactRecord struct {
	V int    `json:"v"`
	H string `json:"h"`
	S string `json:"s"`
	T int64  `json:"t"`
}

// Pack - encode a record in the current compact form
//
// an over-long hash is truncated at MaxHashLength so the encoded
// value always fits the ledger's per-entry bound
func (record *AnchorRecord) Pack() ([]byte, error) {

	code, err := record.Status.Code()
	if nil != err {
		return nil, err
	}

	hash := record.Hash
	if len(hash) > MaxHashLength {
		hash = hash[:MaxHashLength]
	}

	data, err := json.Marshal(compactRecord{
		V: currentVersion,
		H: hash,
		S: code,
		T: record.Timestamp,
	})
	if nil != err {
		return nil, err
	}
	if len(data) > MaxValueLength {
		return nil, fault.ErrDataEntryTooLong
	}
	return data, nil
}

// Unpack - decode a stored value, trying each known encoding
//
// order: (1) versioned compact JSON, (2) legacy plain hash
func Unpack(data []byte) (*AnchorRecord, error) {
	if 0 == len(data) {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}

	if '{' == data[0] {
		return unpackCompact(data)
	}
	return unpackLegacy(data)
}

func unpackCompact(data []byte) (*AnchorRecord, error) {
	var compact compactRecord
	if err := json.Unmarshal(data, &compact); nil != err {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}
	if currentVersion != compact.V {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}

	st, err := status.FromString(compact.S)
	if nil != err {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}

	return &AnchorRecord{
		Hash:      compact.H,
		Status:    st,
		Timestamp: compact.T,
	}, nil
}

// the legacy value is the bare hex hash; anything that is not
// plausible hex is an unknown encoding, not a legacy record
func unpackLegacy(data []byte) (*AnchorRecord, error) {
	if len(data) > MaxHashLength {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}
	for _, c := range data {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return nil, fault.ErrUnrecognizedRecordEncoding
		}
	}

	return &AnchorRecord{
		Hash:      string(data),
		Status:    status.Active,
		Timestamp: 0,
	}, nil
}
