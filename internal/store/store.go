package store

import (
	"sync"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

// Entity is anything with a stable string identity.
type Entity interface {
	EntityID() string
}

// Collection is an ordered in-memory set of entities. All access goes
// through one RWMutex, so writers are serialized and updates applied via
// Update cannot lose concurrent modifications. Insertion order is
// preserved; List returns entities in that order.
type Collection[T Entity] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{
		index: make(map[string]int),
	}
}

// Insert appends the entity. Conflict when the id is already present.
func (c *Collection[T]) Insert(e T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := e.EntityID()
	if _, exists := c.index[id]; exists {
		return apperror.ErrConflict
	}

	c.index[id] = len(c.items)
	c.items = append(c.items, e)
	return nil
}

// InsertFront prepends the entity, keeping newest-first order for
// append-only feeds like attendance. Conflict when the id exists.
func (c *Collection[T]) InsertFront(e T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := e.EntityID()
	if _, exists := c.index[id]; exists {
		return apperror.ErrConflict
	}

	c.items = append([]T{e}, c.items...)
	c.reindex()
	return nil
}

// Get returns a copy of the entity, or ErrNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, apperror.ErrNotFound
	}
	return c.items[i], nil
}

// List returns copies of all entities matching every filter, in
// collection order. A nil filter list returns everything.
func (c *Collection[T]) List(filters ...func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
outer:
	for _, e := range c.items {
		for _, f := range filters {
			if !f(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// Update applies mutate to the stored entity atomically and returns the
// result. ErrNotFound when the id is absent.
func (c *Collection[T]) Update(id string, mutate func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, apperror.ErrNotFound
	}

	updated := mutate(c.items[i])
	if updated.EntityID() != id {
		return zero, apperror.ErrConflict
	}
	c.items[i] = updated
	return updated, nil
}

// Remove deletes by id. Idempotent: removing an absent id succeeds.
func (c *Collection[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reindex()
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// reindex rebuilds the id index after positional changes. Linear, which
// is fine at this scale.
func (c *Collection[T]) reindex() {
	for k := range c.index {
		delete(c.index, k)
	}
	for i, e := range c.items {
		c.index[e.EntityID()] = i
	}
}
