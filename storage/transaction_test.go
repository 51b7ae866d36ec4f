// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCommitIsAtomic(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	trx, err := db.NewTransaction()
	if err != nil {
		t.Fatalf("new transaction error: %s", err)
	}

	trx.Put(db.Pool.Records, []byte("r1"), []byte("record data"))
	trx.Put(db.Pool.AccessEntries, []byte("e1"), []byte{0x01})
	trx.PutN(db.Pool.Counters, []byte("records"), 1)

	// nothing visible outside the transaction before commit
	assert.False(t, db.Pool.Records.Has([]byte("r1")), "record visible before commit")
	assert.False(t, db.Pool.AccessEntries.Has([]byte("e1")), "access entry visible before commit")

	// but visible inside it
	assert.True(t, trx.Has(db.Pool.Records, []byte("r1")), "pending record not visible in transaction")
	n, found := trx.GetN(db.Pool.Counters, []byte("records"))
	assert.True(t, found, "pending counter not visible in transaction")
	assert.Equal(t, uint64(1), n, "wrong pending counter value")

	err = trx.Commit()
	assert.Equal(t, nil, err, "commit error")

	// all three writes landed together
	assert.True(t, db.Pool.Records.Has([]byte("r1")), "record missing after commit")
	assert.True(t, db.Pool.AccessEntries.Has([]byte("e1")), "access entry missing after commit")
	n, found = db.Pool.Counters.GetN([]byte("records"))
	assert.True(t, found, "counter missing after commit")
	assert.Equal(t, uint64(1), n, "wrong counter value after commit")
}

func TestTransactionAbort(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	trx, err := db.NewTransaction()
	if err != nil {
		t.Fatalf("new transaction error: %s", err)
	}

	trx.Put(db.Pool.Records, []byte("r1"), []byte("record data"))
	trx.PutN(db.Pool.Counters, []byte("records"), 1)
	trx.Abort()

	assert.False(t, db.Pool.Records.Has([]byte("r1")), "aborted record reached the database")
	_, found := db.Pool.Counters.GetN([]byte("records"))
	assert.False(t, found, "aborted counter reached the database")
}

func TestTransactionExclusive(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	trx, err := db.NewTransaction()
	if err != nil {
		t.Fatalf("new transaction error: %s", err)
	}

	_, err = db.NewTransaction()
	assert.NotEqual(t, nil, err, "second concurrent transaction was allowed")

	trx.Abort()

	trx2, err := db.NewTransaction()
	assert.Equal(t, nil, err, "transaction after abort was refused")
	if trx2 != nil {
		trx2.Abort()
	}
}

func TestTransactionDelete(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	db.Pool.Records.Put([]byte("r1"), []byte("record data"))

	trx, err := db.NewTransaction()
	if err != nil {
		t.Fatalf("new transaction error: %s", err)
	}

	trx.Delete(db.Pool.Records, []byte("r1"))

	// delete is pending until commit
	assert.True(t, db.Pool.Records.Has([]byte("r1")), "record deleted before commit")

	err = trx.Commit()
	assert.Equal(t, nil, err, "commit error")

	assert.False(t, db.Pool.Records.Has([]byte("r1")), "record still present after commit")
}
