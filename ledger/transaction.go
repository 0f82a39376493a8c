// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/anchorrecord"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// the only record type the anchoring service submits: write one
	// data entry on the owner's account
	DataTransactionTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// DataTransaction - a minimal state-mutating transaction writing one
// keyed data entry with an operation memo
type DataTransaction struct {
	Owner     *account.Account  `json:"owner"`     // base58
	Sequence  uint64            `json:"sequence"`  // owner sequence + 1
	DataKey   string            `json:"dataKey"`   // utf-8
	DataValue []byte            `json:"dataValue"` // size-bounded encoding
	Memo      string            `json:"memo"`      // utf-8, size-bounded
	Signature account.Signature `json:"signature"` // hex, over all previous fields
}

// Pack - Varint64(tag) followed by fields in order as struct above
// with signature last
//
// the network passphrase is mixed in first so a packed transaction is
// only valid on the network it was built for
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (tx *DataTransaction) Pack(passphrase string) (Packed, error) {
	message, err := tx.packMessage(passphrase)
	if nil != err {
		return nil, err
	}

	// signature last
	if err := tx.Owner.CheckSignature(message, tx.Signature); nil != err {
		return message, err
	}
	return appendBytes(message, tx.Signature), nil
}

// Sign - compute the signature over the packed unsigned message
func (tx *DataTransaction) Sign(private *account.PrivateKey, passphrase string) error {
	message, err := tx.packMessage(passphrase)
	if nil != err {
		return err
	}
	tx.Signature = private.Sign(message)
	return nil
}

// the byte string covered by the signature
func (tx *DataTransaction) packMessage(passphrase string) (Packed, error) {
	if nil == tx.Owner {
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(tx.DataKey) || 0 == len(tx.DataValue) {
		return nil, fault.ErrMissingParameters
	}
	if len(tx.DataValue) > anchorrecord.MaxValueLength {
		return nil, fault.ErrDataEntryTooLong
	}
	if len(tx.Memo) > anchorrecord.MaxMemoLength {
		return nil, fault.ErrMemoTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(DataTransactionTag))
	message = appendString(message, passphrase)
	message = appendAccount(message, tx.Owner)
	message = append(message, util.ToVarint64(tx.Sequence)...)
	message = appendString(message, tx.DataKey)
	message = appendBytes(message, tx.DataValue)
	message = appendString(message, tx.Memo)
	return message, nil
}

// TxId - hex SHA3-256 digest of a fully packed transaction
func (packed Packed) TxId() string {
	digest := sha3.Sum256(packed)
	return hex.EncodeToString(digest[:])
}

// Unpack - decode a packed data transaction
//
// layout must parse exactly; the signature check needs the same
// passphrase that was used to pack
func (packed Packed) Unpack(passphrase string) (*DataTransaction, error) {

	tag, n := util.FromVarint64(packed)
	if 0 == n || DataTransactionTag != TagType(tag) {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}
	rest := packed[n:]

	wirePassphrase, rest, err := splitBytes(rest)
	if nil != err {
		return nil, err
	}
	if passphrase != string(wirePassphrase) {
		return nil, fault.ErrChainEndpointMismatch
	}

	ownerBytes, rest, err := splitBytes(rest)
	if nil != err {
		return nil, err
	}
	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}

	sequence, n := util.FromVarint64(rest)
	if 0 == n {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}
	rest = rest[n:]

	dataKey, rest, err := splitBytes(rest)
	if nil != err {
		return nil, err
	}
	dataValue, rest, err := splitBytes(rest)
	if nil != err {
		return nil, err
	}
	memo, rest, err := splitBytes(rest)
	if nil != err {
		return nil, err
	}
	signature, rest, err := splitBytes(rest)
	if nil != err {
		return nil, err
	}
	if 0 != len(rest) {
		return nil, fault.ErrUnrecognizedRecordEncoding
	}

	tx := &DataTransaction{
		Owner:     owner,
		Sequence:  sequence,
		DataKey:   string(dataKey),
		DataValue: dataValue,
		Memo:      string(memo),
		Signature: account.Signature(signature),
	}

	// verify the signature against the re-packed message
	message, err := tx.packMessage(passphrase)
	if nil != err {
		return nil, err
	}
	if err := tx.Owner.CheckSignature(message, tx.Signature); nil != err {
		return nil, err
	}
	return tx, nil
}

// append helpers: varint length followed by the raw bytes

func appendString(buffer Packed, s string) Packed {
	return appendBytes(buffer, []byte(s))
}

func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func appendAccount(buffer Packed, acct *account.Account) Packed {
	return appendBytes(buffer, acct.Bytes())
}

// take one varint length prefixed field off the front of a buffer
func splitBytes(buffer Packed) ([]byte, Packed, error) {
	length, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, nil, fault.ErrUnrecognizedRecordEncoding
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) < length {
		return nil, nil, fault.ErrUnrecognizedRecordEncoding
	}
	return buffer[:length], buffer[length:], nil
}
