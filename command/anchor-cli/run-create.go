// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/credano/anchord/command/anchor-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payloadJSON := c.String("payload")
	fileName := c.String("file")

	switch {
	case "" != payloadJSON && "" != fileName:
		return fmt.Errorf("only one of payload and file is allowed")

	case "" != fileName:
		var b []byte
		var err error
		if "-" == fileName {
			b, err = ioutil.ReadAll(os.Stdin)
		} else {
			b, err = ioutil.ReadFile(fileName)
		}
		if nil != err {
			return err
		}
		payloadJSON = string(b)

	case "" == payloadJSON:
		return fmt.Errorf("missing payload")
	}

	var payload interface{}
	if err := json.Unmarshal([]byte(payloadJSON), &payload); nil != err {
		return fmt.Errorf("payload is not valid JSON: %s", err)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateAnchor(payload)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
