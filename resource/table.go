package resource

import (
	"sync"

	"github.com/wippyai/glbridge/errors"
)

// Table maps handles of one resource kind to host objects.
//
// Insert appends and returns the slot index, so handles are dense and
// increase monotonically from 0. Remove tombstones the slot. Tombstoned and
// never-issued handles fail to resolve with an InvalidHandle error.
type Table[T any] struct {
	store     *slotStore[T]
	observers []Observer
	mu        sync.RWMutex
	kind      Kind
	closed    bool
}

// TableOption configures a Table.
type TableOption func(*tableConfig)

type tableConfig struct {
	observers []Observer
	reuse     bool
}

// WithSlotReuse makes the table reissue tombstoned handles (most recently
// freed first) instead of growing forever.
func WithSlotReuse() TableOption {
	return func(c *tableConfig) {
		c.reuse = true
	}
}

// WithObserver subscribes o to lifecycle events from construction on.
func WithObserver(o Observer) TableOption {
	return func(c *tableConfig) {
		c.observers = append(c.observers, o)
	}
}

// NewTable creates an empty table for the given kind.
func NewTable[T any](kind Kind, opts ...TableOption) *Table[T] {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Table[T]{
		store:     newSlotStore[T](cfg.reuse),
		observers: cfg.observers,
		kind:      kind,
	}
}

// Kind returns the resource kind held by the table.
func (t *Table[T]) Kind() Kind {
	return t.kind
}

// Insert adds a value and returns its handle.
func (t *Table[T]) Insert(value T) (Handle[T], error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, errors.Closed(errors.PhaseResolve, t.kind.String()+" table")
	}
	idx, ok := t.store.create(value)
	issued := t.store.issued()
	t.mu.Unlock()

	if !ok {
		return 0, errors.Overflow(errors.PhaseResolve, issued, t.kind.String()+" handle space")
	}

	t.notify(Event{Kind: t.kind, Handle: idx, Type: EventCreated})
	return Handle[T](idx), nil
}

// Resolve returns the value behind a live handle.
func (t *Table[T]) Resolve(h Handle[T]) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		var zero T
		return zero, errors.Closed(errors.PhaseResolve, t.kind.String()+" table")
	}
	value, state := t.store.get(uint32(h))
	if state != slotLive {
		return value, t.invalid(h, state)
	}
	return value, nil
}

// Remove tombstones a live handle and returns the value it held.
// Removing an already removed handle is an InvalidHandle error.
func (t *Table[T]) Remove(h Handle[T]) (T, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		var zero T
		return zero, errors.Closed(errors.PhaseResolve, t.kind.String()+" table")
	}
	value, state := t.store.drop(uint32(h))
	t.mu.Unlock()

	if state != slotLive {
		return value, t.invalid(h, state)
	}

	t.notify(Event{Kind: t.kind, Handle: uint32(h), Type: EventDeleted})
	return value, nil
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.live
}

// Issued returns the number of slots ever issued, tombstones included.
func (t *Table[T]) Issued() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.issued()
}

// Each iterates over live handles in handle order until fn returns false.
func (t *Table[T]) Each(fn func(Handle[T], T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	t.store.each(func(idx uint32, v T) bool {
		return fn(Handle[T](idx), v)
	})
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Close passes every live value to release in handle order and stops
// accepting operations. Release may be nil.
func (t *Table[T]) Close(release func(Handle[T], T)) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true

	type live struct {
		value T
		h     Handle[T]
	}
	var values []live
	t.store.each(func(idx uint32, v T) bool {
		values = append(values, live{h: Handle[T](idx), value: v})
		return true
	})
	t.store.reset()
	t.mu.Unlock()

	for _, l := range values {
		if release != nil {
			release(l.h, l.value)
		}
		t.notify(Event{Kind: t.kind, Handle: uint32(l.h), Type: EventDeleted})
	}
}

func (t *Table[T]) invalid(h Handle[T], state slotState) error {
	reason := state.reason()
	if h.IsNull() {
		reason = "null handle"
	}
	return errors.InvalidHandle(t.kind.String(), uint32(h), reason)
}

func (t *Table[T]) notify(e Event) {
	t.mu.RLock()
	observers := t.observers
	t.mu.RUnlock()
	for _, o := range observers {
		o.OnResourceEvent(e)
	}
}
