// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - serve the registered RPC handlers over TLS
package listeners

import (
	"crypto/tls"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync/atomic"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a serving loop that can be started and stopped
type Listener interface {
	Serve() error
	Stop()
	ConnectionCount() uint64
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	log    *logger.L
	server *rpc.Server
	ml     *listener.MultiListener
	count  uint64 // atomic
}

func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &rpcListener{
		log:    log,
		server: server,
	}

	limiter := listener.NewLimiter(int(configuration.MaximumConnections))
	ml, err := listener.NewMultiListener(logName, configuration.Listen, tlsConfig, limiter, r.callback)
	if nil != err {
		log.Errorf("invalid %s listen addresses: %v", logName, configuration.Listen)
		return nil, err
	}
	r.ml = ml

	return r, nil
}

func (r *rpcListener) Serve() error {
	r.log.Infof("starting RPC server: %v", r.ml)
	r.ml.Start(nil)
	return nil
}

func (r *rpcListener) Stop() {
	r.ml.Stop()
}

func (r *rpcListener) ConnectionCount() uint64 {
	return atomic.LoadUint64(&r.count)
}

// one connection, served to completion
//
// the signature must match listener.Callback
func (r *rpcListener) callback(conn io.ReadWriteCloser, argument interface{}) {
	atomic.AddUint64(&r.count, 1)
	defer atomic.AddUint64(&r.count, ^uint64(0))

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	r.server.ServeCodec(codec)
}
