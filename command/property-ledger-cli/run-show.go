// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRecordId(c.Uint64("record"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %d\n", id)
	}

	if err := m.openLedger(); err != nil {
		return err
	}

	record, err := m.store.Record(id)
	if err != nil {
		return err
	}

	printJson(m.w, record)
	return nil
}
