// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type createReply struct {
	RecordId    uint64 `json:"recordId"`
	Holder      string `json:"holder"`
	SubmittedAt uint64 `json:"submittedAt"`
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if err != nil {
		return err
	}

	contentSize := c.Uint64("size")
	description := c.String("description")
	labels := c.StringSlice("label")
	submittedAt := sequenceMarker(c.Uint64("sequence"))

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s\n", m.caller)
		fmt.Fprintf(m.e, "name: %q\n", name)
		fmt.Fprintf(m.e, "contentSize: %d\n", contentSize)
		fmt.Fprintf(m.e, "description: %q\n", description)
		fmt.Fprintf(m.e, "labels: %q\n", labels)
		fmt.Fprintf(m.e, "submittedAt: %d\n", submittedAt)
	}

	if err := m.openLedger(); err != nil {
		return err
	}

	id, err := m.store.CreateRecord(m.caller, submittedAt, name, contentSize, description, labels)
	if err != nil {
		return err
	}

	response := createReply{
		RecordId:    id,
		Holder:      m.caller.String(),
		SubmittedAt: submittedAt,
	}

	printJson(m.w, response)
	return nil
}
