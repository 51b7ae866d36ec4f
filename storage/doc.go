// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. record id = big endian uint64 (8 bytes)
// 4. accessor  = identity key bytes (variable length)
// 5. *others*  = byte values of various length
//
// Records:
//
//   R ++ record id             - registered property record
//                                data: packed record (see ledger package)
//
// Access entries:
//
//   E ++ record id ++ accessor - grant bookkeeping written at creation
//                                data: one byte granted flag
//
// Counters:
//
//   C ++ name                  - scalar counters, e.g. total records
//                                data: big endian uint64 (8 bytes)
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
