// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/util"
)

// seed parameters
//
// layout: header(3) ‖ network(1) ‖ entropy(32) ‖ checksum(4)
var seedHeader = []byte{0x61, 0x6e, 0x01}

const (
	seedHeaderLength   = 3
	seedNetworkLength  = 1
	seedEntropyLength  = 32
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + seedNetworkLength + seedEntropyLength + seedChecksumLength
)

// network byte values inside a seed
const (
	liveNetworkByte = 0x00
	testNetworkByte = 0x01
)

// PrivateKey - a decoded signing key
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromBase58Seed - decode a Base58 seed string to a private key
//
// the seed is the configured signing secret; every failure here is a
// configuration error since the seed never leaves the local process
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, fault.ErrCannotDecodeSeed
	}

	if seedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	isTest := false
	switch seed[seedHeaderLength] {
	case liveNetworkByte:
	case testNetworkByte:
		isTest = true
	default:
		return nil, fault.ErrCannotDecodeSeed
	}

	entropy := seed[seedHeaderLength+seedNetworkLength : checksumStart]

	// deterministic key pair from the seed entropy
	_, priv, err := ed25519.GenerateKey(bytes.NewReader(entropy))
	if nil != err {
		return nil, err
	}

	return &PrivateKey{
		Test:       isTest,
		PrivateKey: priv,
	}, nil
}

// NewBase58EncodedSeed - generate a fresh random seed for a network
func NewBase58EncodedSeed(testnet bool) (string, error) {

	entropy := make([]byte, seedEntropyLength)
	if _, err := rand.Read(entropy); nil != err {
		return "", err
	}

	networkByte := byte(liveNetworkByte)
	if testnet {
		networkByte = testNetworkByte
	}

	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, networkByte)
	seed = append(seed, entropy...)

	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}

// Account - the public identity corresponding to this key
func (private *PrivateKey) Account() *Account {
	return &Account{
		Test:      private.Test,
		PublicKey: private.PrivateKey.Public().(ed25519.PublicKey),
	}
}

// Sign - sign a message
func (private *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(private.PrivateKey, message))
}

// IsTesting - whether the key belongs to a non-live network
func (private *PrivateKey) IsTesting() bool {
	return private.Test
}
