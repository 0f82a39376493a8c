// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgernode

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/localnode"
	"github.com/credano/anchord/rpc/ratelimit"
)

const (
	rateLimitTransaction = 100
	rateBurstTransaction = 50
)

// Transaction - type for the RPC
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Node    *localnode.Node
}

func NewTransaction(log *logger.L, node *localnode.Node) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Node:    node,
	}
}

// Submit - apply a packed signed transaction to the local ledger
func (t *Transaction) Submit(arguments *ledger.SubmitArguments, reply *ledger.SubmitResult) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.ErrMissingParameters
	}

	t.Log.Infof("Transaction.Submit: %d bytes", len(arguments.Packed))

	result, err := t.Node.Submit(arguments.Packed)
	if nil != err {
		t.Log.Warnf("submit rejected: %s", err)
		return err
	}
	*reply = *result
	return nil
}
