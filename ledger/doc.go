// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - property record lifecycle
//
// The store keeps small property metadata records, tracked by a
// monotonically increasing identifier that is never reused.  Each
// record has exactly one holder; only the holder may modify, delete
// or transfer it.
//
// Every mutating operation receives the authenticated caller identity
// from an external collaborator and trusts it completely.  Record
// creation also receives an opaque monotonic sequence marker from the
// hosting environment; it is stored untouched as the submission
// point.
//
// All writes of one operation are applied through a single storage
// transaction: either every validation passes and all writes land
// together, or nothing is changed.
package ledger
