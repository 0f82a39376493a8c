// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the names of the supported ledger networks
//
// each chain has a fixed passphrase that is mixed into signed
// transactions so that a transaction built for one network can never
// be replayed on another
package chain

import (
	"strings"

	"github.com/credano/anchord/fault"
)

// names of all chains
const (
	Anchor  = "anchor"
	Testing = "testing"
	Local   = "local"
)

// network passphrases, one per chain
const (
	anchorPassphrase  = "credano anchor network ; 2024"
	testingPassphrase = "credano testing network ; 2024"
	localPassphrase   = "credano standalone local network ; 2024"
)

// markers that identify a non-live endpoint URL or address
var testEndpointMarkers = []string{"test", "local", "127.0.0.1", "::1"}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Anchor, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for any non-live chain
func IsTesting(name string) bool {
	return Anchor != name
}

// Passphrase - the network passphrase for a chain
func Passphrase(name string) (string, error) {
	switch name {
	case Anchor:
		return anchorPassphrase, nil
	case Testing:
		return testingPassphrase, nil
	case Local:
		return localPassphrase, nil
	default:
		return "", fault.ErrInvalidChain
	}
}

// ConsistentEndpoint - check that a chain name and a ledger endpoint
// belong to the same network
//
// a live chain must not point at an endpoint that carries any test
// marker and a test chain must not point at a live endpoint
func ConsistentEndpoint(name string, endpoint string) error {
	if !Valid(name) {
		return fault.ErrInvalidChain
	}
	if "" == endpoint {
		return fault.ErrChainEndpointMismatch
	}

	lowered := strings.ToLower(endpoint)
	marked := false
	for _, marker := range testEndpointMarkers {
		if strings.Contains(lowered, marker) {
			marked = true
			break
		}
	}

	if IsTesting(name) != marked {
		return fault.ErrChainEndpointMismatch
	}
	return nil
}
