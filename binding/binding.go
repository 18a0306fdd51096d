// Package binding implements the resolution strategies of the container.
//
// A Binding describes how instances of one type are produced and under which
// caching policy. Six strategies exist, each in its own file:
//
//   - Factory        — creator(arg) runs on every resolution
//   - Provider       — Factory without an argument
//   - Multiton       — one cached instance per distinct argument
//   - Singleton      — one cached instance per binding
//   - EagerSingleton — Singleton created at container-ready time
//   - Instance       — a fixed pre-built value
//
// Cached strategies obtain a [scope.Registry] through their [scope.Scope] and
// retain values through a [refs.Maker]. Bindings are immutable once
// constructed.
package binding

import (
	"github.com/km-arc/go-bindery/refs"
	"github.com/km-arc/go-bindery/scope"
)

// Resolver is the container surface a creator may resolve its own
// dependencies through. *container.Container implements it.
type Resolver interface {
	Factory(key Key, rc ResolutionContext) (func(arg any) (any, error), error)
}

// ResolutionContext carries what a single resolution runs under: the
// resolving container, the object the resolution is performed on (if any),
// and the scope-discriminating context value.
type ResolutionContext struct {
	Resolver Resolver
	Receiver any
	Value    any
}

// Binding is a resolution strategy. The three type tokens exist for matching
// and diagnostics only; the core never dereferences them.
type Binding interface {
	ContextType() Token
	ArgType() Token
	CreatedType() Token

	// FactoryName is the short strategy name, e.g. "multiton".
	FactoryName() string

	// FactoryFullName is FactoryName plus any non-default configuration,
	// e.g. "multiton(ref = weak)".
	FactoryFullName() string

	// GetFactory returns the factory function for one resolution context.
	// The returned function performs the actual resolution; creator errors
	// propagate from it unconverted.
	GetFactory(rc ResolutionContext, key Key) func(arg any) (any, error)
}

// ReadyHook is the builder-side callback registration an EagerSingleton
// forces its creation through. The builder guarantees fn runs exactly once,
// after every binding is registered and before the container is handed out.
type ReadyHook interface {
	OnReady(key Key, fn func(rc ResolutionContext) error)
}

// ── options ─────────────────────────────────────────────────────────────────

// settings collects the per-binding configuration the options below set.
type settings struct {
	context Token
	ref     refs.Maker
	scope   scope.Scope
}

func newSettings(opts []Option) settings {
	s := settings{context: Any, ref: refs.Strong}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a binding at construction.
type Option func(*settings)

// InContext restricts the binding to resolutions whose context is of type C.
// The default is the wildcard context.
func InContext[C any]() Option {
	return func(s *settings) { s.context = TokenOf[C]() }
}

// WithRef sets the retention policy for cached instances. The default is
// [refs.Strong]. Only Multiton and Singleton consult it.
func WithRef(m refs.Maker) Option {
	return func(s *settings) { s.ref = m }
}

// InScope makes a cached binding store its instances in the registry the
// given scope selects for the resolution context, instead of a
// binding-private one.
func InScope(sc scope.Scope) Option {
	return func(s *settings) { s.scope = sc }
}

// fullName annotates a strategy name with its reference policy when that
// policy is not the default.
func fullName(name string, ref refs.Maker) string {
	if ref == nil || ref.Name() == refs.Strong.Name() {
		return name
	}
	return name + "(ref = " + ref.Name() + ")"
}
