package db

import "errors"

// InitializationError reports a failed engine construction or schema
// bootstrap. The provider resets afterwards, so a later Get may retry.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return "database initialization failed: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

// InsertError reports an insert the engine rejected, typically a
// constraint violation or type mismatch. Not retried automatically.
type InsertError struct {
	Table string
	Err   error
}

func (e *InsertError) Error() string {
	return "insert into " + e.Table + " failed: " + e.Err.Error()
}

func (e *InsertError) Unwrap() error { return e.Err }

// ErrNoIDReturned means an insert succeeded but the engine returned no
// generated id. That breaks the engine contract and must never happen on
// a correct round trip.
var ErrNoIDReturned = errors.New("insert returned no generated id")
