// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type transferReply struct {
	RecordId uint64 `json:"recordId"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRecordId(c.Uint64("record"))
	if err != nil {
		return err
	}

	receiver, err := checkReceiver(c.String("receiver"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", m.caller)
		fmt.Fprintf(m.e, "record: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	if err := m.openLedger(); err != nil {
		return err
	}

	err = m.store.TransferOwnership(m.caller, id, receiver)
	if err != nil {
		return err
	}

	response := transferReply{
		RecordId: id,
		Sender:   m.caller.String(),
		Receiver: receiver.String(),
	}

	printJson(m.w, response)
	return nil
}
