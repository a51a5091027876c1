// Package errs defines the error taxonomy shared by the storebill stores.
// None of these errors is fatal: validation and not-found errors abort the
// single operation that raised them, and persistence errors leave the
// in-memory state authoritative.
package errs

import (
	"errors"
	"fmt"
)

// ErrEmptyBill is returned when finalizing a bill with no line items.
// No history entry is created and the composer is left untouched.
var ErrEmptyBill = errors.New("cannot finalize an empty bill")

// ValidationError reports rejected input. The operation that raised it
// made no state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against an ID that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// PersistenceError reports a failed read or write against the durable
// bridge. The in-memory mutation it followed is NOT rolled back; callers
// should warn the user that persisted state may be stale.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
