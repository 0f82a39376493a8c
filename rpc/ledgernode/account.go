// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgernode - the node-side RPC surface of the local ledger
//
// only mounted on the local chain; the method names mirror what the
// outbound client calls so an anchord on the local chain is its own
// ledger endpoint
package ledgernode

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/localnode"
	"github.com/credano/anchord/rpc/ratelimit"
)

const (
	rateLimitAccount = 200
	rateBurstAccount = 100
)

// Account - type for the RPC
type Account struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Node    *localnode.Node
}

func NewAccount(log *logger.L, node *localnode.Node) *Account {
	return &Account{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		Node:    node,
	}
}

// Get - fetch balance and sequence for an account
func (a *Account) Get(arguments *ledger.AccountArguments, reply *ledger.AccountReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Account {
		return fault.ErrMissingParameters
	}

	acct, err := account.AccountFromBase58(arguments.Account)
	if nil != err {
		return err
	}

	state, err := a.Node.GetAccount(acct)
	if nil != err {
		return err
	}
	reply.Balance = state.Balance
	reply.Sequence = state.Sequence
	return nil
}

// Data - fetch one data entry belonging to an account
func (a *Account) Data(arguments *ledger.DataArguments, reply *ledger.DataReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Account || "" == arguments.Key {
		return fault.ErrMissingParameters
	}

	acct, err := account.AccountFromBase58(arguments.Account)
	if nil != err {
		return err
	}

	value, err := a.Node.GetData(acct, arguments.Key)
	if nil != err {
		return err
	}
	reply.Value = value
	return nil
}
