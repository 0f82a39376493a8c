// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/anchor"
	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/identifier"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/localnode"
	"github.com/credano/anchord/status"
	"github.com/credano/anchord/storage"
)

const localEndpoint = "127.0.0.1:2230"

func TestMain(m *testing.M) {
	directory, err := ioutil.TempDir("", "anchor-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: directory,
		File:      "anchor-test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	if err := storage.Initialise(filepath.Join(directory, "test.leveldb")); nil != err {
		panic(err)
	}

	rc := m.Run()

	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(directory)
	os.Exit(rc)
}

// a funded signer and a service wired to the local node
func testService(t *testing.T, allowSimulatedFallback bool) (*anchor.Service, *localnode.Node, string) {
	t.Helper()

	node, err := localnode.New(chain.Local)
	if nil != err {
		t.Fatalf("local node error: %s", err)
	}

	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}
	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	node.Fund(private.Account(), 1000000)

	service, err := anchor.New(node, chain.Local, localEndpoint, seed, allowSimulatedFallback)
	if nil != err {
		t.Fatalf("service construction error: %s", err)
	}
	return service, node, seed
}

var adaPayload = map[string]interface{}{
	"name":   "Ada",
	"degree": "CS",
}

func TestEndToEnd(t *testing.T) {
	service, _, _ := testService(t, false)

	created, err := service.Create(adaPayload)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	if status.Active != created.Status {
		t.Fatalf("created status: %#v  expected: %#v", created.Status, status.Active)
	}
	if created.Simulated {
		t.Fatal("real submission must not be marked simulated")
	}
	if 64 != len(created.Hash) {
		t.Fatalf("hash length: %d  expected: 64", len(created.Hash))
	}

	read, err := service.Read(created.Identifier.String())
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	if read.Hash != created.Hash {
		t.Errorf("read hash: %q  expected: %q", read.Hash, created.Hash)
	}
	if status.Active != read.Status {
		t.Errorf("read status: %#v  expected: %#v", read.Status, status.Active)
	}

	if err := service.Update(created.Identifier.String(), status.Revoked); nil != err {
		t.Fatalf("update error: %s", err)
	}

	again, err := service.Read(created.Identifier.String())
	if nil != err {
		t.Fatalf("read after update error: %s", err)
	}
	if again.Hash != created.Hash {
		t.Errorf("hash changed by update: %q  expected: %q", again.Hash, created.Hash)
	}
	if status.Revoked != again.Status {
		t.Errorf("status after update: %#v  expected: %#v", again.Status, status.Revoked)
	}
}

// same payload and signer must land on the same identifier
func TestCreateIsIdempotentPerSigner(t *testing.T) {
	service, _, _ := testService(t, false)

	first, err := service.Create(adaPayload)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	second, err := service.Create(map[string]interface{}{
		"degree": "CS",
		"name":   "Ada",
	})
	if nil != err {
		t.Fatalf("create error: %s", err)
	}

	if first.Identifier != second.Identifier {
		t.Fatalf("identifier changed: %s  expected: %s", second.Identifier, first.Identifier)
	}
	if first.Hash != second.Hash {
		t.Fatalf("hash changed: %q  expected: %q", second.Hash, first.Hash)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	service, _, _ := testService(t, false)

	created, err := service.Create(adaPayload)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}

	for i := 0; i < 2; i += 1 {
		if err := service.Update(created.Identifier.String(), status.Suspended); nil != err {
			t.Fatalf("%d: update error: %s", i, err)
		}
	}

	read, err := service.Read(created.Identifier.String())
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	if status.Suspended != read.Status {
		t.Fatalf("status: %#v  expected: %#v", read.Status, status.Suspended)
	}
}

func TestUnknownIdentifier(t *testing.T) {
	service, _, _ := testService(t, false)

	unknown := identifier.Random("0123456789abcdef").String()

	if _, err := service.Read(unknown); fault.ErrIdentifierNotFound != err {
		t.Fatalf("read error: %v  expected: %v", err, fault.ErrIdentifierNotFound)
	}
	if err := service.Update(unknown, status.Revoked); fault.ErrIdentifierNotFound != err {
		t.Fatalf("update error: %v  expected: %v", err, fault.ErrIdentifierNotFound)
	}

	if _, err := service.Read("garbage"); fault.ErrCannotDecodeIdentifier != err {
		t.Fatalf("garbage read error: %v  expected: %v", err, fault.ErrCannotDecodeIdentifier)
	}
}

// an absent payload and an unserializable one are different faults
func TestBadPayload(t *testing.T) {
	service, _, _ := testService(t, false)

	if _, err := service.Create(nil); fault.ErrMissingPayload != err {
		t.Fatalf("nil payload error: %v  expected: %v", err, fault.ErrMissingPayload)
	}

	payload := map[string]interface{}{
		"name": "Ada",
		"ch":   make(chan int),
	}
	if _, err := service.Create(payload); fault.ErrUnserializablePayload != err {
		t.Fatalf("unserializable payload error: %v  expected: %v", err, fault.ErrUnserializablePayload)
	}
}

// a stored value that is just the bare hash must read as Active
func TestLegacyEncodingRead(t *testing.T) {
	service, node, seed := testService(t, false)

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	owner := private.Account()

	const legacyHash = "00f1e2d3c4b5a6978899aabbccddeeff00112233445566778899aabbccddeeff"
	id := identifier.Derive(legacyHash, owner)

	state, err := node.GetAccount(owner)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}

	passphrase, _ := chain.Passphrase(chain.Local)
	tx := &ledger.DataTransaction{
		Owner:     owner,
		Sequence:  state.Sequence + 1,
		DataKey:   id.DataKey(),
		DataValue: []byte(legacyHash),
		Memo:      "anchor:c:legacy",
	}
	if err := tx.Sign(private, passphrase); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	packed, err := tx.Pack(passphrase)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if _, err := node.Submit(packed); nil != err {
		t.Fatalf("submit error: %s", err)
	}

	read, err := service.Read(id.String())
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	if read.Hash != legacyHash {
		t.Errorf("hash: %q  expected: %q", read.Hash, legacyHash)
	}
	if status.Active != read.Status {
		t.Errorf("legacy status: %#v  expected: %#v", read.Status, status.Active)
	}

	// an update must preserve the legacy hash while upgrading encoding
	if err := service.Update(id.String(), status.Revoked); nil != err {
		t.Fatalf("update error: %s", err)
	}
	again, err := service.Read(id.String())
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	if again.Hash != legacyHash {
		t.Errorf("hash after upgrade: %q  expected: %q", again.Hash, legacyHash)
	}
	if status.Revoked != again.Status {
		t.Errorf("status after upgrade: %#v  expected: %#v", again.Status, status.Revoked)
	}
}

func TestSequenceConflict(t *testing.T) {
	_, node, seed := testService(t, false)

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed decode error: %s", err)
	}
	owner := private.Account()

	state, err := node.GetAccount(owner)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}

	passphrase, _ := chain.Passphrase(chain.Local)
	build := func() ledger.Packed {
		tx := &ledger.DataTransaction{
			Owner:     owner,
			Sequence:  state.Sequence + 1,
			DataKey:   "anchor:0011223344556677",
			DataValue: []byte("00ff"),
			Memo:      "anchor:c:conflict",
		}
		if err := tx.Sign(private, passphrase); nil != err {
			t.Fatalf("sign error: %s", err)
		}
		packed, err := tx.Pack(passphrase)
		if nil != err {
			t.Fatalf("pack error: %s", err)
		}
		return packed
	}

	first := build()
	second := build()

	if _, err := node.Submit(first); nil != err {
		t.Fatalf("first submit error: %s", err)
	}

	// same sequence again: exactly one writer wins
	_, err = node.Submit(second)
	if fault.ErrSequenceConflict != err {
		t.Fatalf("second submit error: %v  expected: %v", err, fault.ErrSequenceConflict)
	}
	if !fault.IsErrSubmission(err) {
		t.Fatal("sequence conflict must be a submission error")
	}
}

// a conn where every remote operation fails
type unreachableConn struct{}

func (unreachableConn) GetAccount(acct *account.Account) (*ledger.AccountState, error) {
	return nil, fault.ErrLedgerUnreachable
}
func (unreachableConn) GetData(acct *account.Account, key string) ([]byte, error) {
	return nil, fault.ErrLedgerUnreachable
}
func (unreachableConn) Submit(packed ledger.Packed) (*ledger.SubmitResult, error) {
	return nil, fault.ErrLedgerUnreachable
}

func TestFallbackDisabled(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}

	service, err := anchor.New(unreachableConn{}, chain.Local, localEndpoint, seed, false)
	if nil != err {
		t.Fatalf("service construction error: %s", err)
	}

	if _, err := service.Create(adaPayload); fault.ErrLedgerUnreachable != err {
		t.Fatalf("create error: %v  expected: %v", err, fault.ErrLedgerUnreachable)
	}
}

func TestFallbackSimulates(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}

	service, err := anchor.New(unreachableConn{}, chain.Local, localEndpoint, seed, true)
	if nil != err {
		t.Fatalf("service construction error: %s", err)
	}

	first, err := service.Create(adaPayload)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	if !first.Simulated {
		t.Fatal("fallback result must be marked simulated")
	}
	if status.Active != first.Status {
		t.Fatalf("status: %#v  expected: %#v", first.Status, status.Active)
	}
	if "sim-" != first.TxId[:4] {
		t.Fatalf("txId: %q  expected sim- prefix", first.TxId)
	}

	// randomized path: a second simulated create must not collide
	second, err := service.Create(adaPayload)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	if first.Identifier == second.Identifier {
		t.Fatal("simulated identifiers must be randomized")
	}

	// the fabricated record stays readable locally
	read, err := service.Read(first.Identifier.String())
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	if read.Hash != first.Hash {
		t.Errorf("hash: %q  expected: %q", read.Hash, first.Hash)
	}
	if status.Active != read.Status {
		t.Errorf("status: %#v  expected: %#v", read.Status, status.Active)
	}
}

func TestConstructionValidation(t *testing.T) {
	node, err := localnode.New(chain.Local)
	if nil != err {
		t.Fatalf("local node error: %s", err)
	}

	testSeed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}
	liveSeed, err := account.NewBase58EncodedSeed(false)
	if nil != err {
		t.Fatalf("seed generation error: %s", err)
	}

	testList := []struct {
		chainName string
		endpoint  string
		seed      string
		expected  error
	}{
		{"bogus", localEndpoint, testSeed, fault.ErrInvalidChain},
		{chain.Local, "ledger.credano.net:2230", testSeed, fault.ErrChainEndpointMismatch},
		{chain.Anchor, localEndpoint, testSeed, fault.ErrChainEndpointMismatch},
		{chain.Local, localEndpoint, "not a seed", fault.ErrCannotDecodeSeed},
		{chain.Local, localEndpoint, liveSeed, fault.ErrWrongNetworkForSigner},
	}

	for i, test := range testList {
		_, err := anchor.New(node, test.chainName, test.endpoint, test.seed, false)
		if test.expected != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, test.expected)
		}
		if nil != err && !fault.IsErrConfiguration(err) {
			t.Errorf("%d: error is not a configuration error: %v", i, err)
		}
	}
}
