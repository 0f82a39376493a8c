// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/command/anchor-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect := c.String("connect")
	if "" == connect {
		return fmt.Errorf("missing connect")
	}

	network := c.String("network")
	if !chain.Valid(network) {
		return fmt.Errorf("invalid network: %q", network)
	}
	if err := chain.ConsistentEndpoint(network, connect); nil != err {
		return fmt.Errorf("network: %q cannot use endpoint: %q", network, connect)
	}

	m.config = &configuration.Configuration{
		Network: network,
		Connect: connect,
		TestNet: chain.IsTesting(network),
	}
	m.save = true

	if m.verbose {
		fmt.Fprintf(m.e, "writing config file: %s\n", m.file)
	}

	return printJson(m.w, m.config)
}
