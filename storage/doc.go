// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - LevelDB pools for the local ledger state
//
// used in two places: as the whole ledger backend when running the
// local chain and as the durable store for simulated fallback anchors
// so their identifiers stay readable after a failed real submission
//
// maintain a LevelDB database of key/value pairs; each pool is
// distinguished by a single byte prefix on the key
package storage
