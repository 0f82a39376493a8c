// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the RPC surface
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/anchor"
	"github.com/credano/anchord/localnode"
	"github.com/credano/anchord/rpc/anchors"
	"github.com/credano/anchord/rpc/ledgernode"
	"github.com/credano/anchord/rpc/node"
)

// Create - register the RPC handlers
//
// localNode is nil except on the local chain, where this process also
// serves the ledger side of the protocol
func Create(
	log *logger.L,
	version string,
	chainName string,
	service *anchor.Service,
	localNode *localnode.Node,
	connections func() uint64,
) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(anchors.New(log, service))
	_ = server.Register(node.New(log, start, version, chainName, connections))

	if nil != localNode {
		_ = server.Register(ledgernode.NewAccount(log, localNode))
		_ = server.Register(ledgernode.NewTransaction(log, localNode))
	}

	return server
}
