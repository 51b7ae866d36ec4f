// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/Jojotommy759/Clarity-Property-Ledger/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if c1.Uint64() != 5 {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if c1.Uint64() != 4 {
		t.Errorf("counter is not 4 after decrementing: %d", c1.Uint64())
	}

	c1.Set(1000)

	if c1.Uint64() != 1000 {
		t.Errorf("counter is not 1000 after set: %d", c1.Uint64())
	}

	if n := c1.Increment(); n != 1001 {
		t.Errorf("increment after set returned: %d  expected: 1001", n)
	}

	c1.Set(0)

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}
