// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
	"github.com/Jojotommy759/Clarity-Property-Ledger/ledger"
	"github.com/Jojotommy759/Clarity-Property-Ledger/storage"
)

type metadata struct {
	file    string
	config  *Configuration
	db      *storage.Database
	store   *ledger.Store
	caller  identity.Identity
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "property-ledger-cli"
	app.Usage = "manage property records in a local ledger database"
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
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration file `PATH`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller identity `KEY` in Base58 [config default]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a new property record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*record name `STRING`",
				},
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: "*content size in bytes `N`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*record description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "label, l",
					Usage: "*classification label `TAG`, repeat for more",
				},
				cli.Uint64Flag{
					Name:  "sequence, q",
					Value: 0,
					Usage: " submission sequence `MARKER` [current unix time]",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "modify",
			Usage:     "replace the details of an owned record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "record, r",
					Value: 0,
					Usage: "*record id `ID`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*record name `STRING`",
				},
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: "*content size in bytes `N`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*record description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "label, l",
					Usage: "*classification label `TAG`, repeat for more",
				},
			},
			Action: runModify,
		},
		{
			Name:      "delete",
			Usage:     "remove an owned record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "record, r",
					Value: 0,
					Usage: "*record id `ID`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an owned record to another holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "record, r",
					Value: 0,
					Usage: "*record id `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, R",
					Value: "",
					Usage: "*holder `KEY` in Base58 to receive the record",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "show",
			Usage:     "display one record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "record, r",
					Value: 0,
					Usage: "*record id `ID`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "owned",
			Usage:     "list records held by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " holder `KEY` in Base58 [default global identity]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " list records after this `ID`",
				},
				cli.IntFlag{
					Name:  "count, C",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display ledger status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display property-ledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if command == "version" || command == "help" || command == "h" || command == "" {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config-file"))
		if err != nil {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file)
		if err != nil {
			return err
		}

		caller, err := checkCallerIdentity(c.GlobalString("identity"), config)
		if err != nil {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			caller:  caller,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// release the database if a command opened it
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.closeLedger()
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
