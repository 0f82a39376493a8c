// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - on-chain names for anchored credentials
//
// the authoritative derivation is deterministic over the credential
// hash and the signer identity so re-anchoring the same payload with
// the same signer always lands on the same identifier; the randomized
// derivation exists only for the simulated fallback path
package identifier

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/util"
)

// Length - number of bytes in an identifier digest
const Length = 32

// encoding parameters
const (
	identifierPrefix = 0x1a
	checksumLength   = 4

	// number of leading digest bytes used for the data-entry key
	dataKeyDigestLength = 8

	// data-entry keys share a fixed namespace prefix
	dataKeyPrefix = "anchor:"
)

// Identifier - the raw identifier digest
type Identifier [Length]byte

// Derive - deterministic identifier for a credential hash and signer
//
// pure function: same hash and signer always yield the same identifier
func Derive(credentialHash string, signer *account.Account) Identifier {
	message := make([]byte, 0, len(credentialHash)+1+len(signer.PublicKey))
	message = append(message, credentialHash...)
	message = append(message, signer.Bytes()...)
	return Identifier(sha3.Sum256(message))
}

// Random - non-deterministic identifier for the fallback path
func Random(credentialHash string) Identifier {
	message := append([]byte(credentialHash), util.ToVarint64(uint64(time.Now().UnixNano()))...)
	return Identifier(sha3.Sum256(message))
}

// FromBase58 - decode and verify an identifier string
func FromBase58(identifierBase58Encoded string) (Identifier, error) {
	var id Identifier

	decoded := util.FromBase58(identifierBase58Encoded)
	if 1+Length+checksumLength != len(decoded) {
		return id, fault.ErrCannotDecodeIdentifier
	}
	if identifierPrefix != decoded[0] {
		return id, fault.ErrCannotDecodeIdentifier
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	for i := 0; i < checksumLength; i += 1 {
		if checksum[i] != decoded[checksumStart+i] {
			return id, fault.ErrCannotDecodeIdentifier
		}
	}

	copy(id[:], decoded[1:checksumStart])
	return id, nil
}

// String - Base58 encoding with prefix and checksum
//
// the result stays within the ledger's address charset and length
// limits: Base58 of 37 bytes is at most 51 characters
func (id Identifier) String() string {
	buffer := make([]byte, 0, 1+Length+checksumLength)
	buffer = append(buffer, identifierPrefix)
	buffer = append(buffer, id[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// GoString - for debugging
func (id Identifier) GoString() string {
	return "<identifier:" + id.String() + ">"
}

// DataKey - the deterministic data-entry key for this identifier
//
// a short stable prefix of the digest keys the ledger data entry so
// create, read and update all address the same record
func (id Identifier) DataKey() string {
	return dataKeyPrefix + hex.EncodeToString(id[:dataKeyDigestLength])
}

// MarshalText - convert an identifier to its Base58 JSON form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert Base58 JSON form back to an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
