package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
)

// Mirror is a durable medium written synchronously beneath the store. A failed
// Put or Delete aborts the in-memory write.
type Mirror interface {
	Put(ctx context.Context, collection, id string, seq int64, record any) error
	Delete(ctx context.Context, collection, id string) error
}

// collection is one keyed, ordered entity collection. Reads hand out clones so
// callers never observe a record being replaced.
type collection[T any] struct {
	name   string
	idOf   func(T) string
	clone  func(T) T
	mirror Mirror

	mu      sync.RWMutex
	order   []string
	items   map[string]T
	seqs    map[string]int64
	lastSeq int64
}

func newCollection[T any](name string, idOf func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		name:  name,
		idOf:  idOf,
		clone: clone,
		items: make(map[string]T),
		seqs:  make(map[string]int64),
	}
}

// prepend inserts v at the head of the collection.
func (c *collection[T]) prepend(ctx context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(v)
	if _, exists := c.items[id]; exists {
		return ErrDuplicateID
	}
	seq := c.lastSeq + 1
	if err := c.flush(ctx, id, seq, v); err != nil {
		return err
	}
	c.lastSeq = seq
	c.items[id] = c.clone(v)
	c.seqs[id] = seq
	c.order = append([]string{id}, c.order...)
	return nil
}

// put overwrites the record stored under v's id, keeping its position.
func (c *collection[T]) put(ctx context.Context, v T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(v)
	if _, exists := c.items[id]; !exists {
		return false, nil
	}
	if err := c.flush(ctx, id, c.seqs[id], v); err != nil {
		return true, err
	}
	c.items[id] = c.clone(v)
	return true, nil
}

// remove drops the record stored under id. Removing an absent id is a no-op.
func (c *collection[T]) remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		return nil
	}
	if c.mirror != nil {
		if err := c.mirror.Delete(ctx, c.name, id); err != nil {
			return err
		}
	}
	delete(c.items, id)
	delete(c.seqs, id)
	c.order = slices.DeleteFunc(c.order, func(o string) bool { return o == id })
	return nil
}

// restore loads an already persisted record without flushing it back.
func (c *collection[T]) restore(seq int64, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(v)
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = c.clone(v)
	c.seqs[id] = seq
	if seq > c.lastSeq {
		c.lastSeq = seq
	}
}

// sortBySeq restores newest-first order after a batch of restores.
func (c *collection[T]) sortBySeq() {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.order, func(i, j int) bool {
		return c.seqs[c.order[i]] > c.seqs[c.order[j]]
	})
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(v), true
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if v := c.items[id]; match(v) {
			return c.clone(v), true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.items[id]))
	}
	return out
}

func (c *collection[T]) reorder(less func(a, b T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.order, func(i, j int) bool {
		return less(c.items[c.order[i]], c.items[c.order[j]])
	})
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

func (c *collection[T]) flush(ctx context.Context, id string, seq int64, v T) error {
	if c.mirror == nil {
		return nil
	}
	return c.mirror.Put(ctx, c.name, id, seq, v)
}
