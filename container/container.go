package container

import (
	"fmt"
	"strings"

	"github.com/km-arc/go-bindery/binding"
)

// Container is the immutable resolution surface produced by [Builder.Build].
// It maps binding keys to bindings and turns lookups into factory functions;
// all caching behavior lives in the bindings themselves, so the container
// needs no locking after construction.
type Container struct {
	bindings map[binding.Key]binding.Binding
	order    []binding.Key
	tags     map[string][]binding.Key
}

// Lookup returns the binding for key. A key whose context is not the
// wildcard falls back to the wildcard-context binding of the same shape, so
// bindings registered without context restriction serve every context.
func (c *Container) Lookup(key binding.Key) (binding.Binding, error) {
	if bd, ok := c.bindings[key]; ok {
		return bd, nil
	}
	if !key.Context.IsAny() {
		anyKey := key
		anyKey.Context = binding.Any
		if bd, ok := c.bindings[anyKey]; ok {
			return bd, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBindingNotFound, key)
}

// Factory looks up key and binds its factory to the given resolution
// context. The context's Resolver is filled in with the container itself
// when unset.
func (c *Container) Factory(key binding.Key, rc binding.ResolutionContext) (func(arg any) (any, error), error) {
	bd, err := c.Lookup(key)
	if err != nil {
		return nil, err
	}
	if rc.Resolver == nil {
		rc.Resolver = c
	}
	return bd.GetFactory(rc, key), nil
}

// Keys returns every binding key in registration order.
func (c *Container) Keys() []binding.Key {
	out := make([]binding.Key, len(c.order))
	copy(out, c.order)
	return out
}

// TaggedKeys returns the keys grouped under tag by [Builder.Tag].
func (c *Container) TaggedKeys(tag string) []binding.Key {
	keys := c.tags[tag]
	out := make([]binding.Key, len(keys))
	copy(out, keys)
	return out
}

// Describe renders one line per binding, e.g.
//
//	bind<*logging.Logger>(tag = "log") with singleton
//	bind<*webapp.Greeter> { string -> } with multiton(ref = weak)
func (c *Container) Describe() string {
	var sb strings.Builder
	for _, key := range c.order {
		fmt.Fprintf(&sb, "%s with %s\n", key, c.bindings[key].FactoryFullName())
	}
	return sb.String()
}
