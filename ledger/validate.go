// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/fault"
)

// Validation - the outcome of the pre-write account checks
type Validation struct {
	Signer   *account.PrivateKey
	Account  *account.Account
	State    *AccountState
	LowFunds bool // warning only: the write is still attempted
}

// ValidateSigner - run every check required before a ledger write
//
// order: syntactic secret check, chain and endpoint consistency,
// signer network check, fresh account state, balance threshold; the
// balance check is the only non-fatal one
func ValidateSigner(conn Conn, log *logger.L, chainName string, endpoint string, seed string) (*Validation, error) {

	if err := chain.ConsistentEndpoint(chainName, endpoint); nil != err {
		return nil, err
	}

	signer, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}

	if signer.IsTesting() != chain.IsTesting(chainName) {
		return nil, fault.ErrWrongNetworkForSigner
	}

	acct := signer.Account()

	// never cached: the sequence counter must be current
	state, err := conn.GetAccount(acct)
	if nil != err {
		return nil, err
	}

	validation := &Validation{
		Signer:  signer,
		Account: acct,
		State:   state,
	}

	if state.Balance < MinimumBalance {
		validation.LowFunds = true
		log.Warnf("account: %s  balance: %d below minimum: %d  submission is likely to fail",
			acct, state.Balance, MinimumBalance)
	}

	return validation, nil
}
