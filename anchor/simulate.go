// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"time"

	"github.com/credano/anchord/anchorrecord"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/identifier"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/status"
	"github.com/credano/anchord/storage"
)

// prefix marking a transaction id that never reached the ledger
const simulatedTxIdPrefix = "sim-"

// maybeSimulate - the configured fallback for failed creations
//
// only account and submission errors are eligible: a configuration
// error always propagates; when the fallback is disabled every error
// propagates unchanged
func (service *Service) maybeSimulate(hash string, cause error) (*CreateResult, error) {
	if !service.allowSimulatedFallback {
		return nil, cause
	}
	if !fault.IsErrAccount(cause) && !fault.IsErrSubmission(cause) {
		return nil, cause
	}
	return service.simulate(hash, cause), nil
}

// simulate - fabricate a create result without a ledger write
//
// the identifier is randomized so a later real anchoring of the same
// payload cannot collide with a fabricated record
func (service *Service) simulate(hash string, cause error) *CreateResult {
	id := identifier.Random(hash)
	now := time.Now().UTC()

	record := &anchorrecord.AnchorRecord{
		Hash:      hash,
		Status:    status.Active,
		Timestamp: now.Unix(),
	}

	value, err := record.Pack()
	if nil != err {
		// cannot happen: status is Active and the hash is bounded
		value = []byte(hash)
	}

	// keep the fabricated record readable locally
	if storage.IsInitialised() {
		storage.Pool.Anchors.Put([]byte(id.DataKey()), value)
	}

	txId := simulatedTxIdPrefix + ledger.Packed(append([]byte(id.DataKey()), value...)).TxId()

	service.log.Warnf("SIMULATED result: identifier: %s  cause kind: %T  cause: %s",
		id, cause, cause)

	return &CreateResult{
		Identifier: id,
		Hash:       hash,
		Status:     status.Active,
		TxId:       txId,
		Sequence:   0,
		CreatedAt:  now.Unix(),
		Simulated:  true,
	}
}
