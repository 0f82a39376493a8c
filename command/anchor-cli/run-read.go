// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/credano/anchord/command/anchor-cli/rpccalls"
)

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier := c.String("identifier")
	if "" == identifier {
		return fmt.Errorf("missing identifier")
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ReadAnchor(identifier)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
