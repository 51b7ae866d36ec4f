// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type infoReply struct {
	Version      string `json:"version"`
	ConfigFile   string `json:"configFile"`
	Database     string `json:"database"`
	Identity     string `json:"identity"`
	TotalRecords uint64 `json:"totalRecords"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.openLedger(); err != nil {
		return err
	}

	response := infoReply{
		Version:      version,
		ConfigFile:   m.file,
		Database:     m.config.Database,
		Identity:     m.caller.String(),
		TotalRecords: m.store.TotalRecords(),
	}

	printJson(m.w, response)
	return nil
}
