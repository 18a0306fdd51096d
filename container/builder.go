package container

import (
	"fmt"
	"sync"

	"github.com/km-arc/go-bindery/binding"
)

// Builder assembles the binding set of a container. Register bindings and
// modules, then call [Builder.Build] once: the binding set freezes, ready
// hooks fire, and the finished immutable [Container] is returned.
//
// Builder implements [binding.ReadyHook].
type Builder struct {
	mu       sync.Mutex
	bindings map[binding.Key]binding.Binding
	order    []binding.Key
	tags     map[string][]binding.Key
	ready    []readyHook
	imported map[string]bool
	built    bool
}

type readyHook struct {
	key binding.Key
	fn  func(rc binding.ResolutionContext) error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		bindings: make(map[binding.Key]binding.Binding),
		tags:     make(map[string][]binding.Key),
		imported: make(map[string]bool),
	}
}

// Bind registers bd under key. Binding the same key twice is an error.
func (b *Builder) Bind(key binding.Key, bd binding.Binding) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return ErrAlreadyBuilt
	}
	if _, exists := b.bindings[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, key)
	}
	b.bindings[key] = bd
	b.order = append(b.order, key)
	return nil
}

// Tag groups keys under a named tag group, resolvable later via
// [Container.TaggedKeys].
func (b *Builder) Tag(tag string, keys ...binding.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tags[tag] = append(b.tags[tag], keys...)
}

// OnReady registers a callback fired exactly once by [Builder.Build], after
// every binding is registered and before the container is handed out. The
// key identifies the registrant in diagnostics.
func (b *Builder) OnReady(key binding.Key, fn func(rc binding.ResolutionContext) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = append(b.ready, readyHook{key: key, fn: fn})
}

// Import runs each module's Register against the builder. A module name is
// imported at most once; re-imports are ignored.
func (b *Builder) Import(mods ...Module) error {
	for _, m := range mods {
		b.mu.Lock()
		seen := b.imported[m.Name]
		if !seen {
			b.imported[m.Name] = true
		}
		b.mu.Unlock()
		if seen {
			continue
		}
		if err := m.Register(b); err != nil {
			return fmt.Errorf("module %q: %w", m.Name, err)
		}
	}
	return nil
}

// Build freezes the binding set and fires the ready hooks in registration
// order. The container is returned even when a hook fails, so the error can
// be diagnosed against it; failed eager creations stay retryable.
func (b *Builder) Build() (*Container, error) {
	b.mu.Lock()
	if b.built {
		b.mu.Unlock()
		return nil, ErrAlreadyBuilt
	}
	b.built = true

	c := &Container{
		bindings: b.bindings,
		order:    b.order,
		tags:     b.tags,
	}
	hooks := b.ready
	b.mu.Unlock()

	rc := binding.ResolutionContext{Resolver: c}
	for _, h := range hooks {
		if err := h.fn(rc); err != nil {
			return c, fmt.Errorf("ready hook for %s: %w", h.key, err)
		}
	}
	return c, nil
}
