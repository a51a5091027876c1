// Package storage provides the persistence bridge abstraction.
package storage

import (
	"context"
	"errors"
)

// Persisted state lives under two independent keys, mirroring the
// in-memory stores.
const (
	// KeyBillingHistory holds the JSON array of finalized bills, newest
	// first.
	KeyBillingHistory = "billingHistory"

	// KeyAllProducts holds the JSON array of catalog products in
	// insertion order.
	KeyAllProducts = "allProducts"
)

// ErrNoKey is returned by Get when the key has never been written.
var ErrNoKey = errors.New("key not found")

// Bridge is the durable key-value store the in-memory state is mirrored
// to. The in-memory stores stay authoritative: a failed Set is reported
// but never rolls a mutation back. This abstraction allows swapping
// persistence backends (SQLite, flat file, etc.) without changing the
// service layer.
type Bridge interface {
	// Get retrieves the value stored under key.
	// Returns ErrNoKey if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the bridge.
	Close() error
}
