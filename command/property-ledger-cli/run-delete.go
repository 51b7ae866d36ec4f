// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type deleteReply struct {
	RecordId uint64 `json:"recordId"`
	Deleted  bool   `json:"deleted"`
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRecordId(c.Uint64("record"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", m.caller)
		fmt.Fprintf(m.e, "record: %d\n", id)
	}

	if err := m.openLedger(); err != nil {
		return err
	}

	err = m.store.DeleteRecord(m.caller, id)
	if err != nil {
		return err
	}

	response := deleteReply{
		RecordId: id,
		Deleted:  true,
	}

	printJson(m.w, response)
	return nil
}
