// Package kvstore provides the key-value persistence medium behind the
// bond collection: a simple get/set string store with pluggable backends.
package kvstore

import "errors"

// ErrNotFound indicates an absent key.
var ErrNotFound = errors.New("key not found")

// Store persists string values under string keys.
//
// The collection is written through this interface in full after every
// mutation, so implementations only need whole-value semantics: no partial
// updates, no transactions.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes the value for key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the backing resources.
	Close() error
}
