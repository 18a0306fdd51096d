package scope

import (
	"sync"
	"sync/atomic"

	"github.com/km-arc/go-bindery/refs"
)

// Supplier produces a value together with the refs.Reference that retains it.
// It is the unit of work a Registry runs at most once per live slot.
type Supplier func() (any, refs.Reference, error)

// Registry is a cache from argument key to a retained instance.
//
// GetOrCreate guarantees that for a given key at most one Supplier call ever
// completes per live slot: concurrent callers for the same key block on the
// slot and all receive the single resulting value (or the single error).
// A failed Supplier leaves the slot empty, so a later caller may retry.
// Keys must be comparable.
type Registry interface {
	GetOrCreate(key any, create Supplier) (any, error)

	// Clear drops every cached slot. Subsequent reads re-create.
	Clear()
}

// refBox keeps the concrete type stored in the atomic.Value constant, so a
// slot may hold references from different makers over its lifetime.
type refBox struct{ ref refs.Reference }

// slot is one cache cell: a creation lock plus the retained reference.
// The ref is read lock-free on the hot path and double-checked under mu.
type slot struct {
	mu  sync.Mutex
	ref atomic.Value // refBox
}

func (s *slot) load() (any, bool) {
	if b, ok := s.ref.Load().(refBox); ok && b.ref != nil {
		return b.ref.Get()
	}
	return nil, false
}

func (s *slot) getOrCreate(create Supplier) (any, error) {
	if v, ok := s.load(); ok {
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have finished creation while we waited, or the
	// previous reference may have been reclaimed — re-check before creating.
	if v, ok := s.load(); ok {
		return v, nil
	}

	v, ref, err := create()
	if err != nil {
		// Slot stays empty: the next caller retries.
		return nil, err
	}
	s.ref.Store(refBox{ref: ref})
	return v, nil
}

// ── multi-item ──────────────────────────────────────────────────────────────

// MultiItemRegistry caches one instance per distinct key. Slots are isolated:
// creation for one key never blocks callers for another key.
type MultiItemRegistry struct {
	mu    sync.RWMutex
	slots map[any]*slot
}

// NewMultiItem creates an empty MultiItemRegistry.
func NewMultiItem() *MultiItemRegistry {
	return &MultiItemRegistry{slots: make(map[any]*slot)}
}

func (r *MultiItemRegistry) GetOrCreate(key any, create Supplier) (any, error) {
	return r.slot(key).getOrCreate(create)
}

func (r *MultiItemRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[any]*slot)
}

// slot returns the cell for key, inserting it if needed. Only the map access
// is guarded here; creation itself synchronizes per slot.
func (r *MultiItemRegistry) slot(key any) *slot {
	r.mu.RLock()
	s, ok := r.slots[key]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[key]; ok {
		return s
	}
	s = &slot{}
	r.slots[key] = s
	return s
}

// ── single-item ─────────────────────────────────────────────────────────────

// SingleItemRegistry caches exactly one instance and ignores the key. It is
// the binding-private cache behind unscoped singletons.
type SingleItemRegistry struct {
	cell slot
}

// NewSingleItem creates an empty SingleItemRegistry.
func NewSingleItem() *SingleItemRegistry {
	return &SingleItemRegistry{}
}

func (r *SingleItemRegistry) GetOrCreate(_ any, create Supplier) (any, error) {
	return r.cell.getOrCreate(create)
}

func (r *SingleItemRegistry) Clear() {
	r.cell.mu.Lock()
	defer r.cell.mu.Unlock()
	r.cell.ref.Store(refBox{})
}
