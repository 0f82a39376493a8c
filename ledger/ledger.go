// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the boundary to the remote ledger
//
// the ledger is an opaque append-only system of record reached over a
// TLS JSON-RPC connection; this package holds the wire types, the
// data transaction record and the client, plus the pre-write account
// validation
package ledger

import (
	"github.com/credano/anchord/account"
)

// MinimumBalance - smallest balance, in base ledger units, that keeps
// an account able to pay for further writes
const MinimumBalance = 1000

// AccountState - the signer's current ledger state
//
// always fetched fresh before a write: the ledger orders transactions
// by the sequence counter so a stale value guarantees rejection
type AccountState struct {
	Balance  uint64 `json:"balance"`
	Sequence uint64 `json:"sequence"`
}

// SubmitResult - returned by a successful submission
type SubmitResult struct {
	TxId     string `json:"txId"`
	Sequence uint64 `json:"sequence"`
}

// Conn - the operations the anchoring service needs from a ledger
//
// implemented by the remote Client and by the local in-process node
type Conn interface {
	GetAccount(acct *account.Account) (*AccountState, error)
	GetData(acct *account.Account, key string) ([]byte, error)
	Submit(packed Packed) (*SubmitResult, error)
}

// arguments and replies shared with the node RPC surface

// AccountArguments - account state request
type AccountArguments struct {
	Account string `json:"account"`
}

// AccountReply - account state response
type AccountReply struct {
	Balance  uint64 `json:"balance"`
	Sequence uint64 `json:"sequence"`
}

// DataArguments - data entry request
type DataArguments struct {
	Account string `json:"account"`
	Key     string `json:"key"`
}

// DataReply - data entry response
type DataReply struct {
	Value []byte `json:"value"`
}

// SubmitArguments - transaction submission request
type SubmitArguments struct {
	Packed Packed `json:"packed"`
}
