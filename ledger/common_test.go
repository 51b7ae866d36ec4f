// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
	"github.com/Jojotommy759/Clarity-Property-Ledger/ledger"
	"github.com/Jojotommy759/Clarity-Property-Ledger/storage"
)

// test database file
const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// test identities
var (
	aliceIdentity = mustIdentity("alice public key 001")
	bobIdentity   = mustIdentity("bob public key 0002")
	carolIdentity = mustIdentity("carol public key 03")
)

func mustIdentity(key string) identity.Identity {
	id, err := identity.FromBytes([]byte(key))
	if err != nil {
		panic("bad test identity: " + key)
	}
	return id
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-records.leveldb")
}

// configure for testing
func setup(t *testing.T) (*storage.Database, *ledger.Store) {
	removeFiles()

	db, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if err != nil {
		t.Fatalf("storage initialise error: %s", err)
	}

	store, err := ledger.NewStore(db)
	if err != nil {
		db.Finalise()
		t.Fatalf("store setup error: %s", err)
	}
	return db, store
}

// post test cleanup
func teardown(db *storage.Database) {
	db.Finalise()
	removeFiles()
}

// logging is required by the store
func TestMain(m *testing.M) {
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// shorthand for a valid create
func createRecord(t *testing.T, store *ledger.Store, caller identity.Identity, name string) uint64 {
	t.Helper()

	id, err := store.CreateRecord(caller, 1000, name, 2048, "Lot 14", []string{"residential"})
	if err != nil {
		t.Fatalf("create record error: %s", err)
	}
	return id
}
