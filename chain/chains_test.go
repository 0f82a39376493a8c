// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/fault"
)

func TestValid(t *testing.T) {
	testList := []struct {
		name     string
		expected bool
	}{
		{chain.Anchor, true},
		{chain.Testing, true},
		{chain.Local, true},
		{"", false},
		{"mainnet", false},
		{"Anchor", false},
	}

	for i, test := range testList {
		if chain.Valid(test.name) != test.expected {
			t.Errorf("%d: Valid(%q) expected: %v", i, test.name, test.expected)
		}
	}
}

func TestPassphrase(t *testing.T) {
	seen := map[string]string{}
	for _, name := range []string{chain.Anchor, chain.Testing, chain.Local} {
		p, err := chain.Passphrase(name)
		if nil != err {
			t.Fatalf("Passphrase(%q) error: %s", name, err)
		}
		if "" == p {
			t.Fatalf("Passphrase(%q) is empty", name)
		}
		if previous, ok := seen[p]; ok {
			t.Fatalf("passphrase for %q duplicates %q", name, previous)
		}
		seen[p] = name
	}

	if _, err := chain.Passphrase("bogus"); fault.ErrInvalidChain != err {
		t.Fatalf("Passphrase(bogus) unexpected error: %v", err)
	}
}

// live chain with test endpoint and vice versa must be rejected
func TestConsistentEndpoint(t *testing.T) {
	testList := []struct {
		name     string
		endpoint string
		ok       bool
	}{
		{chain.Anchor, "ledger.credano.net:2230", true},
		{chain.Anchor, "ledger.test.credano.net:2230", false},
		{chain.Anchor, "127.0.0.1:2230", false},
		{chain.Testing, "ledger.test.credano.net:2230", true},
		{chain.Testing, "ledger.credano.net:2230", false},
		{chain.Local, "127.0.0.1:2230", true},
		{chain.Local, "localhost:2230", true},
		{chain.Local, "ledger.credano.net:2230", false},
		{"bogus", "ledger.credano.net:2230", false},
		{chain.Anchor, "", false},
	}

	for i, test := range testList {
		err := chain.ConsistentEndpoint(test.name, test.endpoint)
		if test.ok && nil != err {
			t.Errorf("%d: ConsistentEndpoint(%q, %q) error: %s", i, test.name, test.endpoint, err)
		}
		if !test.ok && nil == err {
			t.Errorf("%d: ConsistentEndpoint(%q, %q) unexpected success", i, test.name, test.endpoint)
		}
		if !test.ok && nil != err && !fault.IsErrConfiguration(err) {
			t.Errorf("%d: error is not a configuration error: %v", i, err)
		}
	}
}
