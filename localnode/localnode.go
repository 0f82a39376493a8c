// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package localnode - an in-process ledger for the local chain
//
// implements the same operations as a remote node against the LevelDB
// pools: account states, keyed data entries and submitted transactions;
// sequence numbers are enforced here exactly as the live ledger does,
// so the race between two writers from one signer is reproducible in
// development
package localnode

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/storage"
)

// SubmissionFee - flat per-transaction charge in base ledger units
const SubmissionFee = 10

// account state record layout: balance(8) ‖ sequence(8)
const accountRecordLength = 16

// Node - the local ledger
type Node struct {
	sync.Mutex // one submission at a time, like the consensus pipeline
	log        *logger.L
	passphrase string
}

// New - create a local node for a chain
//
// storage must already be initialised
func New(chainName string) (*Node, error) {
	passphrase, err := chain.Passphrase(chainName)
	if nil != err {
		return nil, err
	}
	if !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}

	return &Node{
		log:        logger.New("localnode"),
		passphrase: passphrase,
	}, nil
}

// GetAccount - fetch the stored account state
func (node *Node) GetAccount(acct *account.Account) (*ledger.AccountState, error) {
	buffer := storage.Pool.Accounts.Get(acct.Bytes())
	if nil == buffer {
		return nil, fault.ErrAccountNotFound
	}
	if accountRecordLength != len(buffer) {
		logger.Panicf("localnode: corrupt account record for: %s", acct)
	}
	return &ledger.AccountState{
		Balance:  binary.BigEndian.Uint64(buffer[:8]),
		Sequence: binary.BigEndian.Uint64(buffer[8:]),
	}, nil
}

// GetData - fetch one data entry
func (node *Node) GetData(acct *account.Account, key string) ([]byte, error) {
	value := storage.Pool.Data.Get(dataEntryKey(acct, key))
	if nil == value {
		return nil, fault.ErrIdentifierNotFound
	}
	return value, nil
}

// Submit - verify and apply a packed transaction
func (node *Node) Submit(packed ledger.Packed) (*ledger.SubmitResult, error) {
	node.Lock()
	defer node.Unlock()

	tx, err := packed.Unpack(node.passphrase)
	if nil != err {
		node.log.Errorf("submit rejected: %s", err)
		return nil, fault.ErrSubmissionFailed
	}

	state, err := node.GetAccount(tx.Owner)
	if nil != err {
		return nil, err
	}

	// strictly increasing sequence; anything else is a conflict
	if tx.Sequence != state.Sequence+1 {
		node.log.Warnf("sequence conflict: account: %s  submitted: %d  current: %d",
			tx.Owner, tx.Sequence, state.Sequence)
		return nil, fault.ErrSequenceConflict
	}

	if state.Balance < SubmissionFee {
		return nil, fault.ErrInsufficientFunds
	}

	txId := packed.TxId()

	storage.Pool.Data.Put(dataEntryKey(tx.Owner, tx.DataKey), tx.DataValue)
	storage.Pool.Transactions.Put([]byte(txId), packed)
	putAccount(tx.Owner, state.Balance-SubmissionFee, tx.Sequence)

	node.log.Infof("accepted: txId: %s  account: %s  sequence: %d  memo: %q",
		txId, tx.Owner, tx.Sequence, tx.Memo)

	return &ledger.SubmitResult{
		TxId:     txId,
		Sequence: tx.Sequence,
	}, nil
}

// Fund - provision an account with a balance
//
// local chain convenience; the live networks have their own funding
// mechanisms which are outside this program
func (node *Node) Fund(acct *account.Account, balance uint64) {
	node.Lock()
	defer node.Unlock()

	sequence := uint64(0)
	if state, err := node.GetAccount(acct); nil == err {
		sequence = state.Sequence
	}
	putAccount(acct, balance, sequence)
	node.log.Infof("funded: account: %s  balance: %d", acct, balance)
}

func putAccount(acct *account.Account, balance uint64, sequence uint64) {
	buffer := make([]byte, accountRecordLength)
	binary.BigEndian.PutUint64(buffer[:8], balance)
	binary.BigEndian.PutUint64(buffer[8:], sequence)
	storage.Pool.Accounts.Put(acct.Bytes(), buffer)
}

func dataEntryKey(acct *account.Account, key string) []byte {
	buffer := append([]byte{}, acct.Bytes()...)
	buffer = append(buffer, 0x00)
	return append(buffer, key...)
}
