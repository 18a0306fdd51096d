package container

import (
	"fmt"

	"github.com/km-arc/go-bindery/binding"
)

// The generic helpers accept [binding.Resolver] rather than *Container so
// creators can resolve their own dependencies through the
// [binding.ResolutionContext] they are given.

// Resolve resolves a no-argument binding for T under the wildcard context.
//
//	logger, err := container.Resolve[*logging.Logger](c, "log")
func Resolve[T any](r binding.Resolver, tag string) (T, error) {
	return resolve[T](r, binding.Key{
		Context: binding.Any,
		Arg:     binding.Unit,
		Created: binding.TokenOf[T](),
		Tag:     tag,
	}, binding.ResolutionContext{Resolver: r}, nil)
}

// ResolveCtx resolves a no-argument binding for T under a typed context
// value. Bindings restricted with [binding.InContext] match first; wildcard
// bindings serve as fallback. The context value also partitions any
// context-scoped caches.
func ResolveCtx[C, T any](r binding.Resolver, ctx C, tag string) (T, error) {
	return resolve[T](r, binding.Key{
		Context: binding.TokenOf[C](),
		Arg:     binding.Unit,
		Created: binding.TokenOf[T](),
		Tag:     tag,
	}, binding.ResolutionContext{Resolver: r, Value: ctx}, nil)
}

// ResolveWith resolves an argument-keyed binding (Factory or Multiton)
// for T.
//
//	shard, err := container.ResolveWith[int, *Shard](c, "", 3)
func ResolveWith[A, T any](r binding.Resolver, tag string, arg A) (T, error) {
	return resolve[T](r, binding.Key{
		Context: binding.Any,
		Arg:     binding.TokenOf[A](),
		Created: binding.TokenOf[T](),
		Tag:     tag,
	}, binding.ResolutionContext{Resolver: r}, arg)
}

// MustResolve is Resolve for wiring code where a missing binding is a
// programming error; it panics instead of returning one.
func MustResolve[T any](r binding.Resolver, tag string) T {
	v, err := Resolve[T](r, tag)
	if err != nil {
		panic(fmt.Sprintf("container: MustResolve[%s]: %v", binding.TokenOf[T](), err))
	}
	return v
}

// FactoryFor returns the typed factory function of an argument-keyed
// binding, bound to the wildcard context.
func FactoryFor[A, T any](r binding.Resolver, tag string) (func(A) (T, error), error) {
	key := binding.Key{
		Context: binding.Any,
		Arg:     binding.TokenOf[A](),
		Created: binding.TokenOf[T](),
		Tag:     tag,
	}
	f, err := r.Factory(key, binding.ResolutionContext{Resolver: r})
	if err != nil {
		return nil, err
	}
	return func(arg A) (T, error) {
		return assert[T](f(arg))
	}, nil
}

// ProviderFor returns the typed no-argument factory function of a binding.
func ProviderFor[T any](r binding.Resolver, tag string) (func() (T, error), error) {
	key := binding.Key{
		Context: binding.Any,
		Arg:     binding.Unit,
		Created: binding.TokenOf[T](),
		Tag:     tag,
	}
	f, err := r.Factory(key, binding.ResolutionContext{Resolver: r})
	if err != nil {
		return nil, err
	}
	return func() (T, error) {
		return assert[T](f(nil))
	}, nil
}

func resolve[T any](r binding.Resolver, key binding.Key, rc binding.ResolutionContext, arg any) (T, error) {
	var zero T
	f, err := r.Factory(key, rc)
	if err != nil {
		return zero, err
	}
	return assert[T](f(arg))
}

func assert[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %s", ErrWrongType, v, binding.TokenOf[T]())
	}
	return out, nil
}
