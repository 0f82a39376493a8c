// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"github.com/credano/anchord/anchorrecord"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/identifier"
	"github.com/credano/anchord/storage"
)

// Read - reconstruct hash and status for an identifier
//
// the stored value may be in either known encoding; decoded results
// are cached briefly and the cache is invalidated by Update
func (service *Service) Read(identifierBase58Encoded string) (*ReadResult, error) {

	id, err := identifier.FromBase58(identifierBase58Encoded)
	if nil != err {
		return nil, err
	}
	encoded := id.String()

	if cached, found := service.readCache.Get(encoded); found {
		return cached.(*ReadResult), nil
	}

	signer, err := service.signerAccount()
	if nil != err {
		return nil, err
	}

	// fabricated records never reached the ledger, so the local pool
	// is authoritative for them
	data := service.simulatedData(id)
	if nil == data {
		data, err = service.conn.GetData(signer, id.DataKey())
		if nil != err {
			if fault.IsErrNotFound(err) {
				return nil, fault.ErrIdentifierNotFound
			}
			return nil, err
		}
	}

	record, err := anchorrecord.Unpack(data)
	if nil != err {
		return nil, err
	}

	result := &ReadResult{
		Identifier: id,
		Hash:       record.Hash,
		Status:     record.Status,
	}
	service.readCache.SetDefault(encoded, result)
	return result, nil
}

// simulated fallback anchors live outside the ledger
func (service *Service) simulatedData(id identifier.Identifier) []byte {
	if !storage.IsInitialised() {
		return nil
	}
	return storage.Pool.Anchors.Get([]byte(id.DataKey()))
}
