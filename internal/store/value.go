// internal/store/value.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"study-tracker/pkg/storage"
)

// Value is the single-document counterpart of Collection, used for the
// active_plan and progress keys. Same lifecycle: async hydration, strict
// mutation order, single-consumer write queue.
type Value[T any] struct {
	key     string
	backend storage.Store

	mu    sync.RWMutex
	val   T
	ready bool

	readyCh chan struct{}
	writes  chan writeReq
}

// NewValue starts hydration immediately; initial is what reads see until a
// persisted document is loaded, and what the store falls back to on a failed
// load.
func NewValue[T any](backend storage.Store, key string, initial T) *Value[T] {
	v := &Value[T]{
		key:     key,
		backend: backend,
		val:     initial,
		readyCh: make(chan struct{}),
		writes:  make(chan writeReq, 64),
	}
	go v.hydrate(initial)
	go v.writer()
	return v
}

func (v *Value[T]) hydrate(initial T) {
	defer close(v.readyCh)

	loaded := initial
	data, err := v.backend.Get(context.Background(), v.key)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &loaded); err != nil {
			log.Printf("store: parsing %q failed, keeping default: %v", v.key, err)
			loaded = initial
		}
	case errors.Is(err, storage.ErrNotFound):
		// Nothing persisted yet.
	default:
		log.Printf("store: hydrating %q failed, keeping default: %v", v.key, err)
	}

	v.mu.Lock()
	v.val = loaded
	v.ready = true
	v.mu.Unlock()
}

func (v *Value[T]) writer() {
	for req := range v.writes {
		if req.data != nil {
			if err := v.backend.Set(context.Background(), v.key, req.data); err != nil {
				log.Printf("store: persisting %q failed: %v", v.key, err)
			}
		}
		if req.ack != nil {
			close(req.ack)
		}
	}
}

func (v *Value[T]) Ready() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ready
}

func (v *Value[T]) WaitReady() {
	<-v.readyCh
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = val
	data, err := json.Marshal(v.val)
	if err != nil {
		log.Printf("store: serializing %q failed: %v", v.key, err)
		return
	}
	// Sent under v.mu so concurrent Sets cannot enqueue out of order; the
	// writer never takes v.mu.
	v.writes <- writeReq{data: data}
}

func (v *Value[T]) Flush() {
	ack := make(chan struct{})
	v.writes <- writeReq{ack: ack}
	<-ack
}

func (v *Value[T]) Close() {
	v.Flush()
	close(v.writes)
}
