package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist. Absence is
	// a normal outcome, distinct from a store failure.
	ErrNotFound = errors.New("record not found")

	// ErrStoreFailure is returned when the record store reports a
	// failed operation or the transport fails.
	ErrStoreFailure = errors.New("record store request failed")

	// ErrInvalidRecord is returned by the mapper when a raw record is
	// missing required fields or, under the strict policy, fails
	// coercion.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)
