// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package anchor - the credential anchoring service
//
// create: hash the payload, validate the signer account, derive the
// deterministic identifier and submit the data transaction
// read: locate the data entry and decode whichever stored encoding it
// carries
// update: re-encode the stored record with the new status and submit
//
// the service is built once at startup from a validated configuration;
// there is no lazily-initialised global state
package anchor

import (
	"time"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/identifier"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/status"
)

// read-back cache: decoded anchor records only, never account state
const (
	readCacheExpiry  = 30 * time.Second
	readCacheCleanup = 5 * time.Minute
)

// Service - a fully constructed anchoring service
type Service struct {
	log        *logger.L
	conn       ledger.Conn
	chainName  string
	endpoint   string
	seed       string
	passphrase string

	// explicit, logged fallback switch: when off a failed submission
	// is an error; when on it becomes a simulated success
	allowSimulatedFallback bool

	readCache *gocache.Cache
}

// CreateResult - returned by a successful (or simulated) create
type CreateResult struct {
	Identifier identifier.Identifier `json:"identifier"`
	Hash       string                `json:"hash"`
	Status     status.Status         `json:"status"`
	TxId       string                `json:"txId"`
	Sequence   uint64                `json:"ledgerSequence"`
	CreatedAt  int64                 `json:"createdAt"`
	Simulated  bool                  `json:"simulated"`
}

// ReadResult - the stored hash and status for an identifier
type ReadResult struct {
	Identifier identifier.Identifier `json:"identifier"`
	Hash       string                `json:"hash"`
	Status     status.Status         `json:"status"`
}

// New - construct the service, verifying configuration up front
//
// the chain name, endpoint pairing and the signing secret are checked
// here so a bad configuration fails at startup, not on first request
func New(conn ledger.Conn, chainName string, endpoint string, seed string, allowSimulatedFallback bool) (*Service, error) {

	passphrase, err := chain.Passphrase(chainName)
	if nil != err {
		return nil, err
	}
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

	log := logger.New("anchor")
	if allowSimulatedFallback {
		log.Warn("simulated fallback is enabled: failed submissions will return fabricated results")
	}

	return &Service{
		log:                    log,
		conn:                   conn,
		chainName:              chainName,
		endpoint:               endpoint,
		seed:                   seed,
		passphrase:             passphrase,
		allowSimulatedFallback: allowSimulatedFallback,
		readCache:              gocache.New(readCacheExpiry, readCacheCleanup),
	}, nil
}

// run the full pre-write account validation
func (service *Service) validate() (*ledger.Validation, error) {
	return ledger.ValidateSigner(service.conn, service.log, service.chainName, service.endpoint, service.seed)
}

// the signer's public identity without touching the network
func (service *Service) signerAccount() (*account.Account, error) {
	private, err := account.PrivateKeyFromBase58Seed(service.seed)
	if nil != err {
		return nil, err
	}
	return private.Account(), nil
}
