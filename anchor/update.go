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
)

// Update - change the status of an anchored credential
//
// the original hash is preserved and the timestamp refreshed; the
// prior value is decoded with the same multi-encoding tolerance as
// Read so a legacy record is upgraded to the compact form on its
// first update
//
// there is no optimistic concurrency beyond the ledger's sequence
// ordering: a racing update from the same signer surfaces as a
// submission error
func (service *Service) Update(identifierBase58Encoded string, newStatus status.Status) error {

	if !newStatus.IsValid() {
		return fault.ErrInvalidStatus
	}

	id, err := identifier.FromBase58(identifierBase58Encoded)
	if nil != err {
		return err
	}

	validation, err := service.validate()
	if nil != err {
		return err
	}

	data, err := service.conn.GetData(validation.Account, id.DataKey())
	if nil != err {
		if fault.IsErrNotFound(err) {
			return fault.ErrIdentifierNotFound
		}
		return err
	}

	previous, err := anchorrecord.Unpack(data)
	if nil != err {
		return err
	}

	record := &anchorrecord.AnchorRecord{
		Hash:      previous.Hash,
		Status:    newStatus,
		Timestamp: time.Now().UTC().Unix(),
	}
	value, err := record.Pack()
	if nil != err {
		return err
	}

	tx := &ledger.DataTransaction{
		Owner:     validation.Account,
		Sequence:  validation.State.Sequence + 1,
		DataKey:   id.DataKey(),
		DataValue: value,
		Memo:      anchorrecord.UpdateMemo(id, newStatus),
	}
	if err := tx.Sign(validation.Signer, service.passphrase); nil != err {
		return err
	}
	packed, err := tx.Pack(service.passphrase)
	if nil != err {
		return err
	}

	result, err := service.conn.Submit(packed)
	if nil != err {
		service.log.Errorf("update submission failed: kind: %T  message: %s  identifier: %s",
			err, err, id)
		return err
	}

	service.readCache.Delete(id.String())

	service.log.Infof("updated: identifier: %s  status: %s  txId: %s  sequence: %d",
		id, newStatus, result.TxId, result.Sequence)
	return nil
}
