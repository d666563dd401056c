// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when no record is stored under the requested key.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned by write-once operations when the key is
	// already taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrMalformedRecord is returned when a stored value cannot be decoded
	// into the shape its key implies.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownDriver is returned by NewStorages for a storage driver it
	// does not know how to open.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrStoreClosed is returned by any operation on a closed store.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the sqlite store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
