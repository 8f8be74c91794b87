package bondbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/etnz/bondbook/kvstore"
)

// StateKey is the single key under which the whole collection is persisted.
const StateKey = "bonds"

// This file contains the code to persist the collection in a key-value
// store, in a way that is still human-readable and git-friendly when the
// file backend is used.
//
// The strategy is deliberately simple: the whole collection is
// re-serialized as one JSON array of identifier strings after every
// mutation. There is no delta persistence and no transaction log.

// EncodeCollection writes the collection as a JSON array of identifier
// strings, in collection order.
func EncodeCollection(w io.Writer, c *Collection) error {
	ids := make([]string, 0, c.Len())
	for id := range c.All() {
		ids = append(ids, string(id))
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal collection: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("persist error: cannot write collection: %w", err)
	}
	return nil
}

// DecodeCollection parses a serialized collection.
//
// Entries that are not canonical identifiers, and duplicate entries, are
// skipped with a log line rather than failing the whole load, so the
// uniqueness invariant holds for any input.
func DecodeCollection(r io.Reader) (*Collection, error) {
	var ids []string
	if err := json.NewDecoder(r).Decode(&ids); err != nil {
		return nil, fmt.Errorf("parse error: not a valid bond list: %w", err)
	}
	c := NewCollection()
	for _, s := range ids {
		if !singlePattern.MatchString(s) {
			log.Printf("skip-invalid-entry value=%q", s)
			continue
		}
		id := Identifier(s)
		if c.Has(id) {
			log.Printf("skip-duplicate-entry value=%q", s)
			continue
		}
		c.index[id] = struct{}{}
		c.ids = append(c.ids, id)
	}
	return c, nil
}

// SaveCollection re-serializes the whole collection and writes it to the
// store under StateKey. Every mutating operation calls it synchronously.
func SaveCollection(store kvstore.Store, c *Collection) error {
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, c); err != nil {
		return err
	}
	if err := store.Set(StateKey, buf.String()); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", StateKey, err)
	}
	return nil
}

// LoadCollection hydrates the collection from the store at startup.
//
// An absent or unparseable entry yields an empty collection: the failure is
// logged, never surfaced as a user-facing error.
func LoadCollection(store kvstore.Store) *Collection {
	value, err := store.Get(StateKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return NewCollection()
	}
	if err != nil {
		log.Printf("hydrate-failed key=%q err=%q", StateKey, err)
		return NewCollection()
	}
	c, err := DecodeCollection(strings.NewReader(value))
	if err != nil {
		log.Printf("hydrate-failed key=%q err=%q", StateKey, err)
		return NewCollection()
	}
	return c
}
