// internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"study-tracker/pkg/storage"
)

// Entity is anything a Collection can hold.
type Entity interface {
	EntityID() string
}

// writeReq carries one serialized snapshot to the writer goroutine. data is
// nil for Flush barriers; ack is closed once the request has been handled.
type writeReq struct {
	data []byte
	ack  chan struct{}
}

// Collection is the in-memory truth for one persisted collection. It hydrates
// asynchronously from the backend once, applies mutations under a single lock
// in strict call order, and mirrors every mutation to the backend through a
// single-consumer write queue so the persisted snapshot always converges to
// the newest in-memory state.
//
// Reads issued before hydration completes return the empty collection; callers
// that care must check Ready first. A persistence failure is logged and the
// in-memory state stays authoritative.
type Collection[T Entity] struct {
	key     string
	backend storage.Store

	mu    sync.RWMutex
	items []T
	ready bool

	readyCh chan struct{}
	writes  chan writeReq
}

func NewCollection[T Entity](backend storage.Store, key string) *Collection[T] {
	c := &Collection[T]{
		key:     key,
		backend: backend,
		readyCh: make(chan struct{}),
		writes:  make(chan writeReq, 64),
	}
	go c.hydrate()
	go c.writer()
	return c
}

func (c *Collection[T]) hydrate() {
	defer close(c.readyCh)

	items := []T{}
	data, err := c.backend.Get(context.Background(), c.key)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &items); err != nil {
			log.Printf("store: parsing %q failed, starting empty: %v", c.key, err)
			items = []T{}
		}
	case errors.Is(err, storage.ErrNotFound):
		// Nothing persisted yet.
	default:
		log.Printf("store: hydrating %q failed, starting empty: %v", c.key, err)
	}

	c.mu.Lock()
	c.items = items
	c.ready = true
	c.mu.Unlock()
}

func (c *Collection[T]) writer() {
	for req := range c.writes {
		if req.data != nil {
			if err := c.backend.Set(context.Background(), c.key, req.data); err != nil {
				log.Printf("store: persisting %q failed: %v", c.key, err)
			}
		}
		if req.ack != nil {
			close(req.ack)
		}
	}
}

// Ready reports whether hydration has finished (successfully or not).
func (c *Collection[T]) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// WaitReady blocks until hydration has finished.
func (c *Collection[T]) WaitReady() {
	<-c.readyCh
}

// Items returns a copy of the current collection.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the items for which keep is true, in collection order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.enqueueLocked()
}

// Update replaces the item with a matching id and reports whether it was
// found. A miss leaves the collection unchanged but still persists the
// current snapshot.
func (c *Collection[T]) Update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			found = true
			break
		}
	}
	c.enqueueLocked()
	return found
}

// Delete removes the item with the given id and reports whether it existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	kept := c.items[:0]
	for _, item := range c.items {
		if item.EntityID() == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.enqueueLocked()
	return found
}

// enqueueLocked serializes the current collection and hands it to the writer.
// The send happens while c.mu is held so snapshots enter the queue in the
// order the mutations were applied; releasing the lock first would let a
// concurrent mutation enqueue a newer snapshot ahead of an older one, leaving
// the backend on stale state. The writer never takes c.mu, so a full queue
// cannot deadlock.
func (c *Collection[T]) enqueueLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("store: serializing %q failed: %v", c.key, err)
		return
	}
	c.writes <- writeReq{data: data}
}

// Flush blocks until every write enqueued before it has been handed to the
// backend. Callers that need to know persistence completed use this.
func (c *Collection[T]) Flush() {
	ack := make(chan struct{})
	c.writes <- writeReq{ack: ack}
	<-ack
}

// Close drains pending writes and stops the writer. The collection must not
// be mutated afterwards.
func (c *Collection[T]) Close() {
	c.Flush()
	close(c.writes)
}
