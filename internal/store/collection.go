package store // store implements the embedded in-memory collection engine

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when an insert or update would violate a
// unique constraint (record id or a declared unique field).  Handlers
// should translate this into an HTTP 409 response.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound is returned when an update references a record id that has
// no live record in the collection.
var ErrNotFound = errors.New("record not found")

// Record is implemented by every entity kept in a Collection.  Key must
// return the record's identifier; the zero value is reserved and rejected.
type Record interface {
	Key() uint64
}

// Unique declares a single-field uniqueness constraint scoped to one
// collection.  Value extracts the constrained field from a record; two live
// records may never share a non-empty extracted value.
type Unique[T Record] struct {
	Field string         // field name, used in error messages
	Value func(T) string // extracts the constrained value
}

// Collection stores records of one entity type in insertion order.  It has
// no knowledge of cross-entity relationships; uniqueness is scoped to one
// field within this collection.  Collections are not safe for concurrent
// use on their own; the engine serializes access behind its mutex.
type Collection[T Record] struct {
	name   string
	recs   []T // live records in insertion order
	unique []Unique[T]
}

// NewCollection creates an empty collection with the given name and
// uniqueness constraints.
func NewCollection[T Record](name string, unique ...Unique[T]) *Collection[T] {
	return &Collection[T]{name: name, unique: unique}
}

// Name returns the collection name used in snapshots and audit entries.
func (c *Collection[T]) Name() string { return c.name }

// Insert validates the record's id and unique fields and appends it.  The
// insert is rejected with ErrDuplicateKey when a live record already holds
// the same id or the same value on a constrained field, and the collection
// is left unchanged.  The stored record is returned on success.
func (c *Collection[T]) Insert(rec T) (T, error) {
	var zero T
	if rec.Key() == 0 {
		return zero, fmt.Errorf("%s: insert without id", c.name)
	}
	if _, ok := c.indexOf(rec.Key()); ok {
		return zero, fmt.Errorf("%s: id %d: %w", c.name, rec.Key(), ErrDuplicateKey)
	}
	for _, u := range c.unique {
		v := u.Value(rec)
		if v == "" {
			continue
		}
		for _, existing := range c.recs {
			if u.Value(existing) == v {
				return zero, fmt.Errorf("%s: %s %q: %w", c.name, u.Field, v, ErrDuplicateKey)
			}
		}
	}
	c.recs = append(c.recs, rec)
	return rec, nil
}

// FindOne returns the first record matching the predicate, in insertion
// order.  The second return value reports whether a match was found.
func (c *Collection[T]) FindOne(pred func(T) bool) (T, bool) {
	for _, rec := range c.recs {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Find returns all records matching the predicate, in insertion order.
func (c *Collection[T]) Find(pred func(T) bool) []T {
	var out []T
	for _, rec := range c.recs {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Get returns the live record with the given id.
func (c *Collection[T]) Get(id uint64) (T, bool) {
	if i, ok := c.indexOf(id); ok {
		return c.recs[i], true
	}
	var zero T
	return zero, false
}

// Update replaces the record matching the given record's id.  It fails
// with ErrNotFound when no live record has that id, and with
// ErrDuplicateKey when the replacement would collide with another record
// on a constrained field.
func (c *Collection[T]) Update(rec T) error {
	i, ok := c.indexOf(rec.Key())
	if !ok {
		return fmt.Errorf("%s: id %d: %w", c.name, rec.Key(), ErrNotFound)
	}
	for _, u := range c.unique {
		v := u.Value(rec)
		if v == "" {
			continue
		}
		for j, existing := range c.recs {
			if j != i && u.Value(existing) == v {
				return fmt.Errorf("%s: %s %q: %w", c.name, u.Field, v, ErrDuplicateKey)
			}
		}
	}
	c.recs[i] = rec
	return nil
}

// Remove deletes the record with the given id, preserving the insertion
// order of the remaining records.  It reports whether a record was removed.
func (c *Collection[T]) Remove(id uint64) bool {
	i, ok := c.indexOf(id)
	if !ok {
		return false
	}
	c.recs = append(c.recs[:i], c.recs[i+1:]...)
	return true
}

// Count returns the number of live records.
func (c *Collection[T]) Count() int { return len(c.recs) }

// All returns a copy of every live record in insertion order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.recs))
	copy(out, c.recs)
	return out
}

// Clear removes every record.  Bulk clearing is the only permitted way to
// delete audit entries.
func (c *Collection[T]) Clear() { c.recs = nil }

// replaceAll swaps in a fully-formed record set.  Used only when restoring
// a snapshot; constraints are assumed to hold because the snapshot was
// produced from a collection that enforced them.
func (c *Collection[T]) replaceAll(recs []T) { c.recs = recs }

func (c *Collection[T]) indexOf(id uint64) (int, bool) {
	for i, rec := range c.recs {
		if rec.Key() == id {
			return i, true
		}
	}
	return 0, false
}
