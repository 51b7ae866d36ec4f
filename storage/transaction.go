// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// Transaction - atomic multi-pool batch
//
// all writes issued between Begin and Commit are applied to the
// database in a single LevelDB batch; Abort discards them
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionData - concrete transaction over the shared data access
type TransactionData struct {
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		dataAccess: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionData) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.dataAccess.Put(p.prefixKey(key), value)
}

func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.dataAccess.Put(p.prefixKey(key), buffer)
}

func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	t.dataAccess.Delete(p.prefixKey(key))
}

func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.dataAccess.Get(p.prefixKey(key))
	if err != nil {
		return nil
	}
	return value
}

func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if buffer == nil {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	has, err := t.dataAccess.Has(p.prefixKey(key))
	if err != nil {
		return false
	}
	return has
}
