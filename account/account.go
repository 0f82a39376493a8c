// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - the signing identity for ledger writes
//
// the public identity is Base58 of: varint key variant, the ed25519
// public key and a four byte SHA3-256 checksum; the key variant
// carries the algorithm and a network bit so a testing key can never
// be mistaken for a live one
package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/util"
)

// supported key algorithm
const (
	ED25519 = 0x01
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - a public signing identity
type Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - decode a Base58 public identity string
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {

	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrCannotDecodeAccount
	}

	isTest := 0 != keyVariant&testKeyCode

	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if ed25519.PublicKeySize != keyLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return &Account{
		Test:      isTest,
		PublicKey: accountDecoded[keyVariantLength:checksumStart],
	}, nil
}

// AccountFromBytes - rebuild an account from Bytes() output
// (the un-checksummed wire form used inside packed transactions)
func AccountFromBytes(data []byte) (*Account, error) {
	if 1+ed25519.PublicKeySize != len(data) {
		return nil, fault.ErrInvalidKeyLength
	}

	keyVariant := data[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrCannotDecodeAccount
	}

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: append([]byte{}, data[1:]...),
	}, nil
}

// Bytes - key variant prefix followed by the raw public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - Base58 encoding of encoded key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// CheckSignature - verify a signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account.PublicKey), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// IsTesting - whether the key belongs to a non-live network
func (account *Account) IsTesting() bool {
	return account.Test
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.Test = a.Test
	account.PublicKey = a.PublicKey
	return nil
}
