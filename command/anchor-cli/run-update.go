// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/credano/anchord/command/anchor-cli/rpccalls"
	"github.com/credano/anchord/status"
)

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier := c.String("identifier")
	if "" == identifier {
		return fmt.Errorf("missing identifier")
	}

	newStatus, err := status.FromString(c.String("status"))
	if nil != err {
		return fmt.Errorf("invalid status: %q", c.String("status"))
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateAnchor(identifier, newStatus)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
