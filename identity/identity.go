// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - opaque caller/holder identities
//
// An identity is the byte form of a public key supplied by an
// external authentication collaborator.  The ledger trusts it
// completely and never verifies signatures; this package only
// provides a printable Base58 form with a checksum so that
// identities survive copy and paste between tools.
package identity

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
)

// miscellaneous constants
const (
	checksumLength = 4

	minimumKeyLength = 1
	maximumKeyLength = 64
)

// Identity - the raw key bytes of a holder or accessor
type Identity struct {
	key []byte
}

// FromBytes - wrap raw key bytes as an identity
func FromBytes(key []byte) (Identity, error) {
	if len(key) < minimumKeyLength || len(key) > maximumKeyLength {
		return Identity{}, fault.InvalidIdentity
	}
	k := make([]byte, len(key))
	copy(k, key)
	return Identity{key: k}, nil
}

// FromBase58 - convert a Base58 encoded string with checksum to an identity
func FromBase58(s string) (Identity, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return Identity{}, fault.CannotDecodeIdentity
	}

	if len(decoded) <= checksumLength {
		return Identity{}, fault.CannotDecodeIdentity
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Identity{}, fault.ChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// Bytes - fetch the key as a byte slice
func (identity Identity) Bytes() []byte {
	return identity.key
}

// IsZero - check for the unset identity
func (identity Identity) IsZero() bool {
	return len(identity.key) == 0
}

// Equal - compare two identities
func (identity Identity) Equal(other Identity) bool {
	return bytes.Equal(identity.key, other.key)
}

// String - Base58 encoding of key with checksum
func (identity Identity) String() string {
	buffer := make([]byte, len(identity.key), len(identity.key)+checksumLength)
	copy(buffer, identity.key)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an identity to its Base58 JSON form
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - convert a Base58 JSON form back to an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	i, err := FromBase58(string(s))
	if err != nil {
		return err
	}
	*identity = i
	return nil
}
