// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/credano/anchord/command/anchor-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "anchor-cli"
	app.Usage = "anchor credential hashes on the ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [default: " + defaultConfigurationFile() + "]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise anchor-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*anchord host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "network, n",
					Value: configuration.DefaultNetwork,
					Usage: " connect to `NETWORK` [anchor|testing|local]",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "generate",
			Usage:     "generate a signing seed for an anchord configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "live, l",
					Usage: " generate a live network seed (default is testnet)",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "create",
			Usage:     "anchor a credential payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*credential payload `JSON`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " read the payload from `FILE` instead (\"-\" for stdin)",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "read",
			Usage:     "fetch the anchored hash and status",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identifier, i",
					Value: "",
					Usage: "*credential `IDENTIFIER`",
				},
			},
			Action: runRead,
		},
		{
			Name:      "update",
			Usage:     "change the status of an anchored credential",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identifier, i",
					Value: "",
					Usage: "*credential `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*new status [active|revoked|suspended]",
				},
			},
			Action: runUpdate,
		},
		{
			Name:   "status",
			Usage:  "list the valid credential statuses",
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display anchord status",
			Action: runInfo,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		file := c.GlobalString("config")
		if "" == file {
			file = defaultConfigurationFile()
		}

		command := "help"
		if 1 <= len(os.Args) && len(c.Args()) > 0 {
			command = c.Args().Get(0)
		}

		// setup and generate run before a configuration exists
		if "setup" == command || "generate" == command || "status" == command || "help" == command || "h" == command {
			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		options, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  options,
			testnet: options.TestNet,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			if err := configuration.Save(m.file, m.config); nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func defaultConfigurationFile() string {
	home, err := os.UserHomeDir()
	if nil != err {
		home = "."
	}
	return filepath.Join(home, ".config", "anchor-cli", "anchor-cli.json")
}
