// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
)

// access entry flag byte
const grantedFlag = 0x01

const uint64ByteSize = 8

// recordKey - storage key for a record: big endian id
func recordKey(id uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// accessEntryKey - storage key for a grant: record id ++ accessor
func accessEntryKey(id uint64, accessor identity.Identity) []byte {
	key := make([]byte, uint64ByteSize, uint64ByteSize+len(accessor.Bytes()))
	binary.BigEndian.PutUint64(key, id)
	return append(key, accessor.Bytes()...)
}
