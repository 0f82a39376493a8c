// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"time"

	"github.com/credano/anchord/anchorrecord"
	"github.com/credano/anchord/canonical"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/identifier"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/status"
)

// Create - anchor a credential payload
//
// a new credential always starts Active; identical payloads from the
// same signer derive the same identifier, so the ledger entry is
// simply overwritten with the same content
func (service *Service) Create(payload interface{}) (*CreateResult, error) {
	if nil == payload {
		return nil, fault.ErrMissingPayload
	}

	hash, err := canonical.Hash(payload)
	if nil != err {
		return nil, fault.ErrUnserializablePayload
	}

	validation, err := service.validate()
	if nil != err {
		return service.maybeSimulate(hash, err)
	}

	id := identifier.Derive(hash, validation.Account)
	now := time.Now().UTC()

	record := &anchorrecord.AnchorRecord{
		Hash:      hash,
		Status:    status.Active,
		Timestamp: now.Unix(),
	}
	value, err := record.Pack()
	if nil != err {
		return nil, err
	}

	tx := &ledger.DataTransaction{
		Owner:     validation.Account,
		Sequence:  validation.State.Sequence + 1,
		DataKey:   id.DataKey(),
		DataValue: value,
		Memo:      anchorrecord.CreateMemo(id, status.Active),
	}
	if err := tx.Sign(validation.Signer, service.passphrase); nil != err {
		return nil, err
	}
	packed, err := tx.Pack(service.passphrase)
	if nil != err {
		return nil, err
	}

	result, err := service.conn.Submit(packed)
	if nil != err {
		service.log.Errorf("create submission failed: kind: %T  message: %s  identifier: %s",
			err, err, id)
		return service.maybeSimulate(hash, err)
	}

	service.readCache.Delete(id.String())

	service.log.Infof("anchored: identifier: %s  txId: %s  sequence: %d",
		id, result.TxId, result.Sequence)

	return &CreateResult{
		Identifier: id,
		Hash:       hash,
		Status:     status.Active,
		TxId:       result.TxId,
		Sequence:   result.Sequence,
		CreatedAt:  now.Unix(),
		Simulated:  false,
	}, nil
}
