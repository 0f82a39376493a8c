// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/util"
)

func TestAccountRoundTrip(t *testing.T) {
	for i, testnet := range []bool{false, true} {
		seed, err := account.NewBase58EncodedSeed(testnet)
		if nil != err {
			t.Fatalf("%d: seed generation error: %s", i, err)
		}

		private, err := account.PrivateKeyFromBase58Seed(seed)
		if nil != err {
			t.Fatalf("%d: seed decode error: %s", i, err)
		}
		if private.IsTesting() != testnet {
			t.Fatalf("%d: network flag: %v  expected: %v", i, private.IsTesting(), testnet)
		}

		public := private.Account()
		encoded := public.String()

		decoded, err := account.AccountFromBase58(encoded)
		if nil != err {
			t.Fatalf("%d: account decode error: %s", i, err)
		}
		if decoded.String() != encoded {
			t.Fatalf("%d: account: %q  expected: %q", i, decoded.String(), encoded)
		}
		if decoded.IsTesting() != testnet {
			t.Fatalf("%d: account network flag: %v  expected: %v", i, decoded.IsTesting(), testnet)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}

	first, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	second, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}

	if first.Account().String() != second.Account().String() {
		t.Fatal("same seed must derive the same account")
	}
}

func TestInvalidSeeds(t *testing.T) {
	testList := []struct {
		seed     string
		expected error
	}{
		{"", fault.ErrCannotDecodeSeed},
		{"0OIl-not-base58", fault.ErrCannotDecodeSeed},
		{util.ToBase58([]byte{0x61, 0x6e, 0x01}), fault.ErrInvalidSeedLength},
	}

	for i, test := range testList {
		_, err := account.PrivateKeyFromBase58Seed(test.seed)
		if test.expected != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, test.expected)
		}
	}
}

func TestSeedChecksumCorruption(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}

	raw := util.FromBase58(seed)
	raw[len(raw)-1] ^= 0x01
	corrupted := util.ToBase58(raw)

	_, err = account.PrivateKeyFromBase58Seed(corrupted)
	if fault.ErrChecksumMismatch != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrChecksumMismatch)
	}
	if !fault.IsErrConfiguration(err) {
		t.Fatalf("checksum mismatch must be a configuration error")
	}
}

func TestSignAndVerify(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}
	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}

	message := []byte("anchor this credential")
	signature := private.Sign(message)

	public := private.Account()
	if err := public.CheckSignature(message, signature); nil != err {
		t.Fatalf("signature check error: %s", err)
	}

	if err := public.CheckSignature([]byte("another message"), signature); fault.ErrInvalidSignature != err {
		t.Fatalf("altered message: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}

	signature[0] ^= 0xff
	if err := public.CheckSignature(message, signature); fault.ErrInvalidSignature != err {
		t.Fatalf("altered signature: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}
}

func TestAccountCorruptedChecksum(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(false)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}
	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}

	raw := util.FromBase58(private.Account().String())
	raw[len(raw)-1] ^= 0x01

	_, err = account.AccountFromBase58(util.ToBase58(raw))
	if fault.ErrChecksumMismatch != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrChecksumMismatch)
	}
}
