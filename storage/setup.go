// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Records       *PoolHandle `prefix:"R"`
	AccessEntries *PoolHandle `prefix:"E"`
	Counters      *PoolHandle `prefix:"C"`
	TestData      *PoolHandle `prefix:"Z"`
}

// Database - a set of pools over one LevelDB file
type Database struct {
	db     *leveldb.DB
	access Access

	// Pool - the set of exported pools
	Pool pools
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// the file name is derived from the database parameter; this must be
// called before any pool is accessed
func Initialise(database string, readOnly bool) (*Database, error) {

	fileName := database + "-records.leveldb"

	db, version, err := getDB(fileName, readOnly)
	if err != nil {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && version != 0 && version != currentDBVersion {
		db.Close()
		return nil, fault.WrongDatabaseVersion
	}

	if version == 0 && !readOnly {

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	d := &Database{
		db:     db,
		access: newDA(db, new(leveldb.Batch), newCache()),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if len(prefixTag) != 1 {
			db.Close()
			return nil, fault.InvalidStructPointer
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			database:   db,
			dataAccess: d.access,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return d, nil
}

// Finalise - close the database connection
func (d *Database) Finalise() {
	if d.db != nil {
		d.db.Close()
		d.db = nil
	}
}

// NewTransaction - begin an atomic batch over all pools
//
// exactly one transaction can be open at a time; the caller must
// either Commit or Abort it
func (d *Database) NewTransaction() (Transaction, error) {
	trx := newTransaction(d.access)
	err := trx.Begin()
	if err != nil {
		return nil, err
	}
	return trx, nil
}

// return:
//
//	database handle
//	version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if err != nil {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if err != nil {
		db.Close()
		return nil, 0, err
	}

	if len(versionValue) != 4 {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
