// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/Jojotommy759/Clarity-Property-Ledger/fault"
	"github.com/Jojotommy759/Clarity-Property-Ledger/identity"
	"github.com/Jojotommy759/Clarity-Property-Ledger/util"
)

// field limits
const (
	minNameLength = 1
	maxNameLength = 64

	minDescriptionLength = 1
	maxDescriptionLength = 128

	minLabelLength = 1
	maxLabelLength = 32

	minLabelCount = 1
	maxLabelCount = 10

	// exclusive bounds: 0 < contentSize < 1_000_000_000
	maxContentSize = 999_999_999
)

// record tag
// this is encoded as a Varint64 at the start of "Packed"
const recordTag = 0x01

// Record - one stored property document
//
// Id is allocated by the store and is not part of the packed value;
// it is derived from the storage key
type Record struct {
	Id          uint64            `json:"id,string"`
	Name        string            `json:"name"`        // utf-8
	Holder      identity.Identity `json:"holder"`      // base58
	ContentSize uint64            `json:"contentSize"` // bytes of off-chain content
	SubmittedAt uint64            `json:"submittedAt"` // opaque sequence marker
	Description string            `json:"description"` // utf-8
	Labels      []string          `json:"labels"`      // utf-8, ordered
}

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - serialise a record for storage
//
// Pack Varint64(tag) followed by fields in order as struct above,
// each string or byte field prefixed by its Varint64 length, the
// label sequence prefixed by its Varint64 count.
//
// all field validation happens here so that nothing invalid can ever
// be written; returns nil and the specific fault on any violation
func (record *Record) Pack() (Packed, error) {
	err := record.Validate()
	if err != nil {
		return nil, err
	}

	message := util.ToVarint64(recordTag)
	message = appendString(message, record.Name)
	message = appendBytes(message, record.Holder.Bytes())
	message = appendUint64(message, record.ContentSize)
	message = appendUint64(message, record.SubmittedAt)
	message = appendString(message, record.Description)

	message = appendUint64(message, uint64(len(record.Labels)))
	for _, label := range record.Labels {
		message = appendString(message, label)
	}

	return message, nil
}

// Unpack - turn a byte slice back into a record
//
// the Id field is left as zero; the caller sets it from the storage
// key
func (record Packed) Unpack() (r *Record, e error) {

	// a truncated buffer would cause a slice bounds panic below
	defer func() {
		if recover() != nil {
			r = nil
			e = fault.NotRecordPack
		}
	}()

	tag, n := util.ClippedVarint64(record, recordTag, recordTag+1)
	if n == 0 || tag != recordTag {
		return nil, fault.NotRecordPack
	}

	// name
	nameLength, nameOffset := util.ClippedVarint64(record[n:], minNameLength, maxNameLength*4)
	if nameOffset == 0 {
		return nil, fault.NotRecordPack
	}
	n += nameOffset
	name := string(record[n : n+nameLength])
	n += nameLength

	// holder
	holderLength, holderOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if holderOffset == 0 {
		return nil, fault.NotRecordPack
	}
	n += holderOffset
	holder, err := identity.FromBytes(record[n : n+holderLength])
	if err != nil {
		return nil, err
	}
	n += holderLength

	// content size
	contentSize, contentSizeLength := util.FromVarint64(record[n:])
	if contentSizeLength == 0 {
		return nil, fault.NotRecordPack
	}
	n += contentSizeLength

	// submission marker
	submittedAt, submittedAtLength := util.FromVarint64(record[n:])
	if submittedAtLength == 0 {
		return nil, fault.NotRecordPack
	}
	n += submittedAtLength

	// description
	descriptionLength, descriptionOffset := util.ClippedVarint64(record[n:], minDescriptionLength, maxDescriptionLength*4)
	if descriptionOffset == 0 {
		return nil, fault.NotRecordPack
	}
	n += descriptionOffset
	description := string(record[n : n+descriptionLength])
	n += descriptionLength

	// labels
	labelCount, labelCountOffset := util.ClippedVarint64(record[n:], minLabelCount, maxLabelCount)
	if labelCountOffset == 0 {
		return nil, fault.NotRecordPack
	}
	n += labelCountOffset

	labels := make([]string, 0, labelCount)
	for i := 0; i < labelCount; i += 1 {
		labelLength, labelOffset := util.ClippedVarint64(record[n:], minLabelLength, maxLabelLength*4)
		if labelOffset == 0 {
			return nil, fault.NotRecordPack
		}
		n += labelOffset
		labels = append(labels, string(record[n:n+labelLength]))
		n += labelLength
	}

	return &Record{
		Name:        name,
		Holder:      holder,
		ContentSize: contentSize,
		SubmittedAt: submittedAt,
		Description: description,
		Labels:      labels,
	}, nil
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append a byte slice to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
