// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
	"github.com/Jojotommy759/Clarity-Property-Ledger/ledger"
	"github.com/Jojotommy759/Clarity-Property-Ledger/storage"
)

var (
	ErrRequiredConfigFile = fault.InvalidError("config file is required")
	ErrRequiredIdentity   = fault.InvalidError("identity is required")
	ErrRequiredName       = fault.InvalidError("record name is required")
	ErrRequiredReceiver   = fault.InvalidError("receiver is required")
	ErrRequiredRecordId   = fault.InvalidError("record id is required")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if file == "" {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// the global --identity flag overrides the config file default
func checkCallerIdentity(key string, config *Configuration) (identity.Identity, error) {
	if key == "" {
		key = config.Identity
	}
	if key == "" {
		return identity.Identity{}, ErrRequiredIdentity
	}

	return identity.FromBase58(key)
}

// record name is required field
func checkName(name string) (string, error) {
	if name == "" {
		return "", ErrRequiredName
	}
	return name, nil
}

// record id is required field
func checkRecordId(id uint64) (uint64, error) {
	if id == 0 {
		return 0, ErrRequiredRecordId
	}
	return id, nil
}

// receiver is a required Base58 holder key
func checkReceiver(key string) (identity.Identity, error) {
	if key == "" {
		return identity.Identity{}, ErrRequiredReceiver
	}

	return identity.FromBase58(key)
}

// a zero marker means the submission time was not supplied
func sequenceMarker(marker uint64) uint64 {
	if marker == 0 {
		marker = uint64(time.Now().Unix())
	}
	return marker
}

// open the database and attach a record store
//
// After will close whatever is opened here
func (m *metadata) openLedger() error {
	if m.store != nil {
		return nil
	}

	if err := logger.Initialise(m.config.Logging); err != nil {
		return err
	}

	db, err := storage.Initialise(m.config.Database, storage.ReadWrite)
	if err != nil {
		logger.Finalise()
		return err
	}

	store, err := ledger.NewStore(db)
	if err != nil {
		db.Finalise()
		logger.Finalise()
		return err
	}

	m.db = db
	m.store = store
	return nil
}

func (m *metadata) closeLedger() {
	if m.db == nil {
		return
	}
	m.db.Finalise()
	logger.Finalise()
	m.db = nil
	m.store = nil
}
