// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Jojotommy759/Clarity-Property-Ledger/storage"
)

// main pool test
func TestPool(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.TestData

	// ensure that pool was empty
	if _, found := p.LastElement(); found {
		t.Fatal("pool is not empty at start")
	}

	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	p.Put([]byte("key-three"), []byte("data-three"))
	p.Put([]byte("key-one"), []byte("data-one"))     // duplicate
	p.Put([]byte("key-three"), []byte("data-three")) // duplicate
	p.Put([]byte("key-four"), []byte("data-four"))
	p.Put([]byte("key-delete-this"), []byte("to be deleted"))
	p.Put([]byte("key-five"), []byte("data-five"))
	p.Put([]byte("key-six"), []byte("data-six"))
	p.Delete([]byte("key-delete-this"))
	p.Put([]byte("key-seven"), []byte("data-seven"))
	p.Put([]byte("key-one"), []byte("data-one(NEW)")) // duplicate

	// ensure that data is correct
	checkResults(t, p)

	// check that restarting database keeps data
	db.Finalise()
	db, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if err != nil {
		t.Fatalf("storage initialise error: %s", err)
	}
	checkResults(t, db.Pool.TestData)
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if err != nil {
		t.Errorf("error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: excess, got: '%s'  expected: Nothing", i, a.Key)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor.Seek(nil)
	firstPair, err := cursor.Fetch(2)
	if err != nil {
		t.Errorf("error on Fetch: %v", err)
		return
	}
	secondPair, err := cursor.Fetch(2)
	if err != nil {
		t.Errorf("error on Fetch: %v", err)
		return
	}
	if bytes.Equal(firstPair[1].Key, secondPair[0].Key) {
		t.Errorf("overlap on Fetch at: %q", firstPair[1].Key)
	}

	// check a single get
	if actual := p.Get([]byte("key-two")); !bytes.Equal(actual, []byte("data-two")) {
		t.Errorf("get returned: %q  expected: %q", actual, "data-two")
	}

	// check has
	if !p.Has([]byte("key-two")) {
		t.Error("has returned false for existing key")
	}
	if p.Has(nonExistantKey) {
		t.Error("has returned true for nonexistant key")
	}

	// check that deleted keys are gone
	if p.Get([]byte("key-remove-me")) != nil {
		t.Error("deleted key still present")
	}
	if p.Get([]byte("key-delete-this")) != nil {
		t.Error("deleted key still present")
	}

	// check a get on a missing key
	if p.Get(nonExistantKey) != nil {
		t.Error("get on nonexistant key returned data")
	}
}

// test the 8 byte big endian storage
func TestPoolN(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Counters

	key := []byte("records")

	if _, found := p.GetN(key); found {
		t.Fatal("counter already present")
	}

	p.PutN(key, 12345)

	n, found := p.GetN(key)
	if !found {
		t.Fatal("counter not found")
	}
	if n != 12345 {
		t.Errorf("counter value: %d  expected: %d", n, 12345)
	}
}

// each pool has a separate key space
func TestPoolSeparation(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	key := []byte("same-key")

	db.Pool.TestData.Put(key, []byte("test-data"))

	if db.Pool.Records.Has(key) {
		t.Error("records pool sees test data key")
	}
	if db.Pool.AccessEntries.Has(key) {
		t.Error("access entries pool sees test data key")
	}
	if !db.Pool.TestData.Has(key) {
		t.Error("test data pool lost its key")
	}
}

// fixed-width binary keys with leading zero bytes must page
// correctly across successive fetches
func TestPoolCursorPaging(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.TestData

	key := func(n uint64) []byte {
		k := make([]byte, 8)
		binary.BigEndian.PutUint64(k, n)
		return k
	}

	for n := uint64(1); n <= 5; n += 1 {
		p.Put(key(n), []byte{byte(n)})
	}

	cursor := p.NewFetchCursor()

	expected := uint64(1)
	for {
		data, err := cursor.Fetch(2)
		if err != nil {
			t.Fatalf("error on Fetch: %v", err)
		}
		if len(data) == 0 {
			break
		}
		for _, e := range data {
			if !bytes.Equal(e.Key, key(expected)) {
				t.Fatalf("key: %x  expected: %x", e.Key, key(expected))
			}
			expected += 1
		}
	}
	if expected != 6 {
		t.Errorf("fetched up to key: %d  expected all 5", expected-1)
	}

	// resuming past the highest possible key returns nothing
	cursor = p.NewFetchCursor()
	all := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	p.Put(all, []byte("last"))
	cursor.Seek(all)
	data, err := cursor.Fetch(2)
	if err != nil {
		t.Fatalf("error on Fetch: %v", err)
	}
	if len(data) != 1 || !bytes.Equal(data[0].Key, all) {
		t.Fatalf("fetch at maximum key: %x", data)
	}
	data, err = cursor.Fetch(2)
	if err != nil {
		t.Fatalf("error on Fetch: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("fetch after maximum key: %x  expected: none", data)
	}
}
