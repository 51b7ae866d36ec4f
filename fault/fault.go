// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError    GenericError
	InvalidError   GenericError
	LengthError    GenericError
	NotFoundError  GenericError
	OwnershipError GenericError
	ProcessError   GenericError
)

// common errors - keep in alphabetic order
var (
	CannotDecodeIdentity    = ProcessError("cannot decode identity")
	ChecksumMismatch        = ProcessError("checksum mismatch")
	DatabaseIsNotSet        = InvalidError("database is not set")
	InvalidContentSize      = InvalidError("content size out of range")
	InvalidCount            = InvalidError("count out of range")
	InvalidCursor           = InvalidError("cursor is invalid")
	InvalidIdentity         = InvalidError("identity is invalid")
	InvalidLabelSet         = InvalidError("label set is invalid")
	InvalidRecordName       = LengthError("name or description length out of range")
	InvalidStructPointer    = InvalidError("struct pointer is invalid")
	NotRecordHolder         = OwnershipError("not the current record holder")
	NotRecordPack           = ProcessError("not record pack")
	RecordNotFound          = NotFoundError("record not found")
	TransactionAlreadyInUse = ExistsError("transaction already in use")
	WrongDatabaseVersion    = InvalidError("wrong database version")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e OwnershipError) Error() string { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - see IsErrExists
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - see IsErrExists
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - see IsErrExists
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrOwnership - see IsErrExists
func IsErrOwnership(e error) bool { _, ok := e.(OwnershipError); return ok }

// IsErrProcess - see IsErrExists
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
