// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"unicode/utf8"

	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
)

// IsValidLabel - check a single label length
func IsValidLabel(label string) bool {
	n := utf8.RuneCountInString(label)
	return n >= minLabelLength && n <= maxLabelLength
}

// ValidateLabels - check an entire label sequence
//
// the count must be within bounds and every label must be valid; one
// bad label rejects the whole set
func ValidateLabels(labels []string) error {
	if len(labels) < minLabelCount || len(labels) > maxLabelCount {
		return fault.InvalidLabelSet
	}
	for _, label := range labels {
		if !IsValidLabel(label) {
			return fault.InvalidLabelSet
		}
	}
	return nil
}

// Validate - check all record fields
//
// pure check: no state is read or written, so callers can apply a
// strict validate-all-then-apply-all pattern
//
// checks are ordered so that a record failing several limits reports
// the name fault first, then content size, then description, then
// labels
func (record *Record) Validate() error {

	if record.Holder.IsZero() {
		return fault.InvalidIdentity
	}

	if n := utf8.RuneCountInString(record.Name); n < minNameLength || n > maxNameLength {
		return fault.InvalidRecordName
	}

	if record.ContentSize < 1 || record.ContentSize > maxContentSize {
		return fault.InvalidContentSize
	}

	if n := utf8.RuneCountInString(record.Description); n < minDescriptionLength || n > maxDescriptionLength {
		return fault.InvalidRecordName
	}

	return ValidateLabels(record.Labels)
}
