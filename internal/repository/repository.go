package repository

import (
	"database/sql"
	"errors"
	"sync"
)

// ErrNotFound is returned by writes that target a record that does not exist.
var ErrNotFound = errors.New("record not found")

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// collection is the in-memory table backing the memory repositories. Items are
// kept in display order, newest first unless a caller appends.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
}

func newCollection[T any](key func(T) string, seed ...T) *collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &collection[T]{items: items, key: key}
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) prepend(items ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(append(make([]T, 0, len(items)+len(c.items)), items...), c.items...)
}

func (c *collection[T]) append(items ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, items...)
}

func (c *collection[T]) replace(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	for i := range c.items {
		if c.key(c.items[i]) == id {
			c.items[i] = item
			return nil
		}
	}
	return ErrNotFound
}

// modify applies fn to every item matching pred and reports how many matched.
func (c *collection[T]) modify(pred func(T) bool, fn func(*T)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for i := range c.items {
		if pred(c.items[i]) {
			fn(&c.items[i])
			n++
		}
	}
	return n
}

// removeWhere drops every item matching pred and reports how many were dropped.
func (c *collection[T]) removeWhere(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	n := len(c.items) - len(kept)
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return n
}

func (c *collection[T]) remove(id string) error {
	if c.removeWhere(func(item T) bool { return c.key(item) == id }) == 0 {
		return ErrNotFound
	}
	return nil
}
