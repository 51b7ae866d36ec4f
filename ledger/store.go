// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/Jojotommy759/Clarity-Property-Ledger/counter"
	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
	"github.com/Jojotommy759/Clarity-Property-Ledger/storage"
)

// counter key in the Counters pool
var totalRecordsKey = []byte("records")

// Store - the record store
//
// owns all record and access entry state; operations are serialised
// by the store lock so that the id counter is linearised and no two
// operations interleave partial writes
type Store struct {
	sync.RWMutex

	log   *logger.L
	db    *storage.Database
	total counter.Counter // mirrors the persisted total, source of new ids
}

// NewStore - attach a store to an initialised database
//
// restores the record counter from its persisted value
func NewStore(db *storage.Database) (*Store, error) {
	if db == nil {
		return nil, fault.DatabaseIsNotSet
	}

	s := &Store{
		log: logger.New("ledger"),
		db:  db,
	}

	if n, found := db.Pool.Counters.GetN(totalRecordsKey); found {
		s.total.Set(n)
	}

	s.log.Infof("store opened: %d records issued so far", s.total.Uint64())
	return s, nil
}

// CreateRecord - register a new record for the caller
//
// submittedAt is the opaque sequence marker supplied by the hosting
// environment; it is stored as-is
//
// on success the record, the creator access entry and the advanced
// counter are committed in one batch and the new id is returned
func (s *Store) CreateRecord(caller identity.Identity, submittedAt uint64, name string, contentSize uint64, description string, labels []string) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	record := &Record{
		Name:        name,
		Holder:      caller,
		ContentSize: contentSize,
		SubmittedAt: submittedAt,
		Description: description,
		Labels:      labels,
	}

	// validate-then-apply: nothing is written unless pack succeeds
	packed, err := record.Pack()
	if err != nil {
		return 0, err
	}

	id := s.total.Uint64() + 1

	trx, err := s.db.NewTransaction()
	if err != nil {
		return 0, err
	}

	trx.Put(s.db.Pool.Records, recordKey(id), packed)
	trx.Put(s.db.Pool.AccessEntries, accessEntryKey(id, caller), []byte{grantedFlag})
	trx.PutN(s.db.Pool.Counters, totalRecordsKey, id)

	err = trx.Commit()
	if err != nil {
		return 0, err
	}

	s.total.Set(id)

	s.log.Infof("record: %d created by: %s", id, caller)
	return id, nil
}

// ModifyRecord - replace the mutable fields of a record
//
// id, holder and the submission marker are untouched; any validation
// failure leaves the record unchanged
func (s *Store) ModifyRecord(caller identity.Identity, id uint64, name string, contentSize uint64, description string, labels []string) error {
	s.Lock()
	defer s.Unlock()

	current, err := s.fetch(id)
	if err != nil {
		return err
	}

	if !current.Holder.Equal(caller) {
		return fault.NotRecordHolder
	}

	record := &Record{
		Name:        name,
		Holder:      current.Holder,
		ContentSize: contentSize,
		SubmittedAt: current.SubmittedAt,
		Description: description,
		Labels:      labels,
	}

	packed, err := record.Pack()
	if err != nil {
		return err
	}

	s.db.Pool.Records.Put(recordKey(id), packed)

	s.log.Infof("record: %d modified by: %s", id, caller)
	return nil
}

// DeleteRecord - permanently remove a record
//
// access entries are deliberately left behind: the original system
// never cleaned them up and nothing reads them
func (s *Store) DeleteRecord(caller identity.Identity, id uint64) error {
	s.Lock()
	defer s.Unlock()

	current, err := s.fetch(id)
	if err != nil {
		return err
	}

	if !current.Holder.Equal(caller) {
		return fault.NotRecordHolder
	}

	s.db.Pool.Records.Delete(recordKey(id))

	s.log.Infof("record: %d deleted by: %s", id, caller)
	return nil
}

// TransferOwnership - pass a record to a new holder
//
// newHolder is trusted to be well formed; in particular a transfer to
// the current holder is allowed
func (s *Store) TransferOwnership(caller identity.Identity, id uint64, newHolder identity.Identity) error {
	s.Lock()
	defer s.Unlock()

	current, err := s.fetch(id)
	if err != nil {
		return err
	}

	if !current.Holder.Equal(caller) {
		return fault.NotRecordHolder
	}

	current.Holder = newHolder

	packed, err := current.Pack()
	if err != nil {
		return err
	}

	s.db.Pool.Records.Put(recordKey(id), packed)

	s.log.Infof("record: %d transferred: %s → %s", id, caller, newHolder)
	return nil
}

// RecordExists - check if an id is present
func (s *Store) RecordExists(id uint64) bool {
	s.RLock()
	defer s.RUnlock()

	return s.db.Pool.Records.Has(recordKey(id))
}

// IsOwnerOf - check if accessor is the current holder of id
//
// false for a nonexistent record
func (s *Store) IsOwnerOf(id uint64, accessor identity.Identity) bool {
	s.RLock()
	defer s.RUnlock()

	current, err := s.fetch(id)
	if err != nil {
		return false
	}
	return current.Holder.Equal(accessor)
}

// ContentSize - content size of a record
//
// zero for a nonexistent record
func (s *Store) ContentSize(id uint64) uint64 {
	s.RLock()
	defer s.RUnlock()

	current, err := s.fetch(id)
	if err != nil {
		return 0
	}
	return current.ContentSize
}

// Record - fetch a decoded record
func (s *Store) Record(id uint64) (*Record, error) {
	s.RLock()
	defer s.RUnlock()

	return s.fetch(id)
}

// OwnedRecords - ids of records currently held by accessor
//
// the scan starts just after the start id (zero to scan from the
// beginning) and stops after count matches
func (s *Store) OwnedRecords(accessor identity.Identity, start uint64, count int) ([]uint64, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	s.RLock()
	defer s.RUnlock()

	cursor := s.db.Pool.Records.NewFetchCursor()
	if start != 0 {
		cursor.Seek(recordKey(start + 1))
	}

	ids := make([]uint64, 0, count)
	for len(ids) < count {
		elements, err := cursor.Fetch(count - len(ids))
		if err != nil {
			return nil, err
		}
		if len(elements) == 0 {
			break
		}
		for _, e := range elements {
			record, err := Packed(e.Value).Unpack()
			if err != nil {
				return nil, err
			}
			if record.Holder.Equal(accessor) {
				ids = append(ids, binary.BigEndian.Uint64(e.Key))
			}
		}
	}
	return ids, nil
}

// TotalRecords - number of ids issued over the store lifetime
//
// deleted records still count: ids are never reused
func (s *Store) TotalRecords() uint64 {
	return s.total.Uint64()
}

// read and decode a record, caller holds the lock
func (s *Store) fetch(id uint64) (*Record, error) {
	packed := s.db.Pool.Records.Get(recordKey(id))
	if packed == nil {
		return nil, fault.RecordNotFound
	}

	record, err := Packed(packed).Unpack()
	if err != nil {
		return nil, err
	}
	record.Id = id
	return record, nil
}
