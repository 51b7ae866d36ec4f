// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"bytes"
	"testing"

	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
)

// round trip raw bytes through the Base58 form
func TestBase58RoundTrip(t *testing.T) {

	testKeys := [][]byte{
		{0x01},
		{0x7a, 0x81, 0x92, 0x56, 0x12, 0xe2, 0x28, 0x61,
			0x37, 0x6e, 0x36, 0x58, 0x8a, 0x21, 0x4f, 0xb1,
			0x79, 0x1b, 0xf7, 0xb5, 0xcd, 0xbe, 0x34, 0x43,
			0xa6, 0x30, 0x9d, 0x7e, 0xac, 0xaa, 0xe8, 0x2e},
		bytes.Repeat([]byte{0xff}, 64),
	}

	for i, key := range testKeys {
		id, err := identity.FromBytes(key)
		if err != nil {
			t.Fatalf("%d: FromBytes error: %s", i, err)
		}

		encoded := id.String()
		decoded, err := identity.FromBase58(encoded)
		if err != nil {
			t.Fatalf("%d: FromBase58(%q) error: %s", i, encoded, err)
		}

		if !decoded.Equal(id) {
			t.Errorf("%d: identity mismatch after round trip: %q", i, encoded)
		}
		if !bytes.Equal(decoded.Bytes(), key) {
			t.Errorf("%d: key mismatch: %x  expected: %x", i, decoded.Bytes(), key)
		}
	}
}

func TestFromBytesBounds(t *testing.T) {

	if _, err := identity.FromBytes([]byte{}); err != fault.InvalidIdentity {
		t.Errorf("empty key error: %v  expected: %v", err, fault.InvalidIdentity)
	}

	if _, err := identity.FromBytes(bytes.Repeat([]byte{0x55}, 65)); err != fault.InvalidIdentity {
		t.Errorf("oversize key error: %v  expected: %v", err, fault.InvalidIdentity)
	}
}

func TestChecksumMismatch(t *testing.T) {

	id, err := identity.FromBytes([]byte("some public key bytes"))
	if err != nil {
		t.Fatalf("FromBytes error: %s", err)
	}

	encoded := id.String()

	// corrupt one character, avoiding a change to the same character
	corrupted := []byte(encoded)
	if corrupted[0] == '2' {
		corrupted[0] = '3'
	} else {
		corrupted[0] = '2'
	}

	_, err = identity.FromBase58(string(corrupted))
	if err == nil {
		t.Fatal("corrupted identity was accepted")
	}
}

func TestUnmarshalText(t *testing.T) {

	id, err := identity.FromBytes([]byte{0x10, 0x20, 0x30, 0x40})
	if err != nil {
		t.Fatalf("FromBytes error: %s", err)
	}

	text, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %s", err)
	}

	var back identity.Identity
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText error: %s", err)
	}
	if !back.Equal(id) {
		t.Errorf("identity mismatch: %s  expected: %s", back, id)
	}

	if back.IsZero() {
		t.Error("unmarshalled identity is zero")
	}

	var zero identity.Identity
	if !zero.IsZero() {
		t.Error("zero identity is not zero")
	}
}
