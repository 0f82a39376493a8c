// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/anchor"
	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/configuration"
	"github.com/credano/anchord/ledger"
	"github.com/credano/anchord/localnode"
	"github.com/credano/anchord/rpc/certificate"
	"github.com/credano/anchord/rpc/listeners"
	"github.com/credano/anchord/rpc/server"
	"github.com/credano/anchord/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("test chain: %v", chain.IsTesting(theConfiguration.Chain))
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Anchoring", theConfiguration.Anchoring)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// select the ledger connection: the local chain keeps its ledger
	// inside this process, the others dial out
	var conn ledger.Conn
	var localNode *localnode.Node
	if chain.Local == theConfiguration.Chain {
		log.Info("initialise local ledger node")
		localNode, err = localnode.New(theConfiguration.Chain)
		if nil != err {
			log.Criticalf("local node error: %s", err)
			exitwithstatus.Message("local node error: %s", err)
		}
		conn = localNode
	} else {
		log.Infof("connect to ledger: %s", theConfiguration.Anchoring.Endpoint)
		client, err := ledger.NewClient(theConfiguration.Anchoring.Endpoint, 0)
		if nil != err {
			log.Criticalf("ledger connect error: %s", err)
			exitwithstatus.Message("ledger connect error: %s", err)
		}
		defer client.Close()
		conn = client
	}

	// the anchoring service checks chain, endpoint and signing seed
	// so a bad configuration fails here
	log.Info("initialise anchoring service")
	service, err := anchor.New(
		conn,
		theConfiguration.Chain,
		theConfiguration.Anchoring.Endpoint,
		theConfiguration.Anchoring.SigningSeed,
		theConfiguration.Anchoring.AllowSimulatedFallback,
	)
	if nil != err {
		log.Criticalf("anchor initialise error: %s", err)
		exitwithstatus.Message("anchor initialise error: %s", err)
	}

	// load the RPC certificate
	certificatePEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.Certificate)
	if nil != err {
		log.Criticalf("certificate: %q error: %s", theConfiguration.ClientRPC.Certificate, err)
		exitwithstatus.Message("certificate: %q error: %s", theConfiguration.ClientRPC.Certificate, err)
	}
	keyPEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.PrivateKey)
	if nil != err {
		log.Criticalf("private key: %q error: %s", theConfiguration.ClientRPC.PrivateKey, err)
		exitwithstatus.Message("private key: %q error: %s", theConfiguration.ClientRPC.PrivateKey, err)
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, "client_rpc", string(certificatePEM), string(keyPEM))
	if nil != err {
		log.Criticalf("certificate error: %s", err)
		exitwithstatus.Message("certificate error: %s", err)
	}

	// assemble and start the RPC server
	var rpcListener listeners.Listener
	connections := func() uint64 {
		if nil == rpcListener {
			return 0
		}
		return rpcListener.ConnectionCount()
	}

	rpcServer := server.Create(log, version, theConfiguration.Chain, service, localNode, connections)

	rpcListener, err = listeners.NewRPC(&theConfiguration.ClientRPC, log, rpcServer, tlsConfiguration, fingerprint)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if err := rpcListener.Serve(); nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}
	defer rpcListener.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
