// Package scope maps runtime context objects to instance registries.
//
// A Scope decides how cached instances are partitioned: the unbounded scope
// shares one registry across all contexts, while a context scope isolates a
// registry per distinct context value. Scopes never store instances
// themselves — that is the [Registry]'s job.
package scope

import "sync"

// Scope resolves the Registry a cached binding should use for a given
// resolution. The receiver is the object the resolution is performed on and
// the context is the scope-discriminating value; either may be nil and stock
// scopes ignore the receiver.
type Scope interface {
	GetRegistry(receiver, context any) Registry
}

// ── unbounded ───────────────────────────────────────────────────────────────

// UnboundedScope returns the same registry for every (receiver, context)
// pair: instances live as long as the scope itself.
type UnboundedScope struct {
	reg *MultiItemRegistry
}

// NewUnbounded creates an UnboundedScope with a fresh registry.
func NewUnbounded() *UnboundedScope {
	return &UnboundedScope{reg: NewMultiItem()}
}

func (s *UnboundedScope) GetRegistry(_, _ any) Registry {
	return s.reg
}

// ── per-context ─────────────────────────────────────────────────────────────

// nilContext stands in for a nil context value, which is not usable as a map
// key alongside comparable user contexts.
type nilContext struct{}

// ContextScope keeps one registry per distinct context value. Context values
// must be comparable.
type ContextScope struct {
	mu   sync.Mutex
	regs map[any]Registry
}

// NewContextScope creates an empty ContextScope.
func NewContextScope() *ContextScope {
	return &ContextScope{regs: make(map[any]Registry)}
}

func (s *ContextScope) GetRegistry(_, context any) Registry {
	if context == nil {
		context = nilContext{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.regs[context]
	if !ok {
		reg = NewMultiItem()
		s.regs[context] = reg
	}
	return reg
}

// Forget drops the registry held for context, releasing its instances. The
// next resolution under that context starts from an empty registry.
func (s *ContextScope) Forget(context any) {
	if context == nil {
		context = nilContext{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regs, context)
}
