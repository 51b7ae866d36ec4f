// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
)

type ownedReply struct {
	Owner   string   `json:"owner"`
	Records []uint64 `json:"records"`
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := m.caller
	if ownerKey := c.String("owner"); ownerKey != "" {
		var err error
		owner, err = identity.FromBase58(ownerKey)
		if err != nil {
			return err
		}
	}

	start := c.Uint64("start")
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	if err := m.openLedger(); err != nil {
		return err
	}

	ids, err := m.store.OwnedRecords(owner, start, count)
	if err != nil {
		return err
	}

	response := ownedReply{
		Owner:   owner.String(),
		Records: ids,
	}

	printJson(m.w, response)
	return nil
}
