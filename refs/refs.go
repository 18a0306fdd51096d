// Package refs defines the retention contract for cached binding instances.
//
// A cached value is never stored raw: it is wrapped in a [Reference] produced
// by a [Maker]. The default [Strong] maker pins the value for the lifetime of
// its cache slot. Alternative makers (such as [Weak]) may let the runtime
// reclaim the value, in which case [Reference.Get] reports the value as gone
// and the cache transparently re-creates it on the next read.
package refs

import "weak"

// Reference is a handle to a retained value.
type Reference interface {
	// Get returns the retained value, or (nil, false) once the value has
	// been reclaimed.
	Get() (any, bool)
}

// Maker turns a creator function into a retained value.
//
// Make runs the creator itself so that implementations can capture the value
// before anything else observes it. A creator error is returned unchanged
// and no Reference is produced.
type Maker interface {
	// Name is the short display name used in binding descriptions,
	// e.g. "strong" or "weak".
	Name() string

	// Make invokes create and wraps the result. It returns the created
	// value alongside the Reference so callers never pay a Get round-trip
	// for a value they just produced.
	Make(create func() (any, error)) (any, Reference, error)
}

// Strong is the default Maker: the value is retained until its cache slot is
// dropped.
var Strong Maker = strongMaker{}

// Weak retains the value only weakly: once the garbage collector reclaims it,
// the next cache read re-creates it.
var Weak Maker = weakMaker{}

// ── strong ──────────────────────────────────────────────────────────────────

type strongMaker struct{}

func (strongMaker) Name() string { return "strong" }

func (strongMaker) Make(create func() (any, error)) (any, Reference, error) {
	v, err := create()
	if err != nil {
		return nil, nil, err
	}
	return v, strongRef{v: v}, nil
}

type strongRef struct{ v any }

func (r strongRef) Get() (any, bool) { return r.v, true }

// ── weak ────────────────────────────────────────────────────────────────────

type weakMaker struct{}

func (weakMaker) Name() string { return "weak" }

func (weakMaker) Make(create func() (any, error)) (any, Reference, error) {
	v, err := create()
	if err != nil {
		return nil, nil, err
	}
	// The value is boxed so a weak pointer can be taken regardless of its
	// dynamic type.
	cell := new(any)
	*cell = v
	return v, weakRef{p: weak.Make(cell)}, nil
}

type weakRef struct{ p weak.Pointer[any] }

func (r weakRef) Get() (any, bool) {
	cell := r.p.Value()
	if cell == nil {
		return nil, false
	}
	return *cell, true
}
