// Package storage persists ddtd's state records as versioned JSON
// documents under stable keys, the same shape the records had in the
// original web client's localStorage. One open app instance is the
// single writer; two instances sharing a db file race last-write-wins.
package storage

import "context"

// Store is a key/value record store. Engine components depend on this
// interface so tests can substitute the in-memory implementation.
type Store interface {
	// Load returns the record for key. The boolean is false when the
	// key has never been saved.
	Load(ctx context.Context, key string) (string, bool, error)
	// Save overwrites the record for key.
	Save(ctx context.Context, key string, value string) error
	// Delete removes the record for key if present.
	Delete(ctx context.Context, key string) error
}
