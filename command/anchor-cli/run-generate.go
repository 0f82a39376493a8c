// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/credano/anchord/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	testnet := !c.Bool("live")

	seed, err := account.NewBase58EncodedSeed(testnet)
	if nil != err {
		return err
	}
	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	response := struct {
		Seed    string `json:"seed"`
		Account string `json:"account"`
		TestNet bool   `json:"testnet"`
	}{
		Seed:    seed,
		Account: private.Account().String(),
		TestNet: testnet,
	}
	return printJson(m.w, response)
}
