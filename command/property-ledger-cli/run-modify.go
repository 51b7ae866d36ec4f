// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type modifyReply struct {
	RecordId uint64 `json:"recordId"`
	Modified bool   `json:"modified"`
}

func runModify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRecordId(c.Uint64("record"))
	if err != nil {
		return err
	}

	name, err := checkName(c.String("name"))
	if err != nil {
		return err
	}

	contentSize := c.Uint64("size")
	description := c.String("description")
	labels := c.StringSlice("label")

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", m.caller)
		fmt.Fprintf(m.e, "record: %d\n", id)
		fmt.Fprintf(m.e, "name: %q\n", name)
		fmt.Fprintf(m.e, "contentSize: %d\n", contentSize)
		fmt.Fprintf(m.e, "description: %q\n", description)
		fmt.Fprintf(m.e, "labels: %q\n", labels)
	}

	if err := m.openLedger(); err != nil {
		return err
	}

	err = m.store.ModifyRecord(m.caller, id, name, contentSize, description, labels)
	if err != nil {
		return err
	}

	response := modifyReply{
		RecordId: id,
		Modified: true,
	}

	printJson(m.w, response)
	return nil
}
