package bondbook

import (
	"iter"
	"slices"
	"strings"
)

// Collection is the ordered, duplicate-free set of bond identifiers.
//
// Order is insertion order, except that newly ingested identifiers are
// prepended as a single block, reversed, so the most recently accepted
// identifier of a range appears first in the visible list.
type Collection struct {
	ids   []Identifier
	index map[Identifier]struct{}
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{index: make(map[Identifier]struct{})}
}

// Len returns the number of identifiers held.
func (c *Collection) Len() int { return len(c.ids) }

// Has reports whether the identifier is already in the collection.
func (c *Collection) Has(id Identifier) bool {
	_, ok := c.index[id]
	return ok
}

// All iterates over the identifiers in collection order.
func (c *Collection) All() iter.Seq[Identifier] {
	return func(yield func(Identifier) bool) {
		for _, id := range c.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Insert prepends the block of newly accepted identifiers at the front of
// the collection, with the block internally reversed from acceptance order.
// For an ascending range the largest identifier therefore ends up first,
// pushing earlier entries down the visible list.
//
// Identifiers already present are skipped, preserving uniqueness.
func (c *Collection) Insert(block []Identifier) {
	fresh := make([]Identifier, 0, len(block))
	for i := len(block) - 1; i >= 0; i-- {
		id := block[i]
		if c.Has(id) {
			continue
		}
		c.index[id] = struct{}{}
		fresh = append(fresh, id)
	}
	c.ids = append(fresh, c.ids...)
}

// Delete removes the identifier and reports whether it was present.
// Deleting an absent identifier is a no-op.
func (c *Collection) Delete(id Identifier) bool {
	if !c.Has(id) {
		return false
	}
	delete(c.index, id)
	c.ids = slices.DeleteFunc(c.ids, func(x Identifier) bool { return x == id })
	return true
}

// Clear empties the collection. Confirmation is the caller's concern.
func (c *Collection) Clear() {
	c.ids = nil
	c.index = make(map[Identifier]struct{})
}

// Filter returns the subsequence of identifiers containing query as a
// literal substring, preserving collection order. An empty query returns
// the full collection.
func (c *Collection) Filter(query string) []Identifier {
	if query == "" {
		return slices.Clone(c.ids)
	}
	var out []Identifier
	for _, id := range c.ids {
		if strings.Contains(string(id), query) {
			out = append(out, id)
		}
	}
	return out
}
