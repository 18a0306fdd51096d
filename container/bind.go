package container

import "github.com/km-arc/go-bindery/binding"

// The helpers below pair a binding constructor with its registration so the
// key is always derived from the binding's own type tokens. Each returns the
// key it registered under.

// keyFor derives the container key of a constructed binding.
func keyFor(bd binding.Binding, tag string) binding.Key {
	return binding.Key{
		Context: bd.ContextType(),
		Arg:     bd.ArgType(),
		Created: bd.CreatedType(),
		Tag:     tag,
	}
}

// BindFactory registers a fresh-instance-per-call binding for T keyed by an
// argument of type A.
func BindFactory[A, T any](b *Builder, tag string, creator func(rc binding.ResolutionContext, arg A) (T, error), opts ...binding.Option) (binding.Key, error) {
	bd := binding.NewFactory(creator, opts...)
	key := keyFor(bd, tag)
	return key, b.Bind(key, bd)
}

// BindProvider registers a fresh-instance-per-call binding for T with no
// argument.
func BindProvider[T any](b *Builder, tag string, creator func(rc binding.ResolutionContext) (T, error), opts ...binding.Option) (binding.Key, error) {
	bd := binding.NewProvider(creator, opts...)
	key := keyFor(bd, tag)
	return key, b.Bind(key, bd)
}

// BindMultiton registers a one-instance-per-argument binding for T.
func BindMultiton[A, T any](b *Builder, tag string, creator func(rc binding.ResolutionContext, arg A) (T, error), opts ...binding.Option) (binding.Key, error) {
	bd := binding.NewMultiton(creator, opts...)
	key := keyFor(bd, tag)
	return key, b.Bind(key, bd)
}

// BindSingleton registers a single-instance binding for T.
func BindSingleton[T any](b *Builder, tag string, creator func(rc binding.ResolutionContext) (T, error), opts ...binding.Option) (binding.Key, error) {
	bd := binding.NewSingleton(creator, opts...)
	key := keyFor(bd, tag)
	return key, b.Bind(key, bd)
}

// BindEagerSingleton registers a single-instance binding for T whose
// creation is forced when [Builder.Build] fires the ready hooks.
func BindEagerSingleton[T any](b *Builder, tag string, creator func(rc binding.ResolutionContext) (T, error), opts ...binding.Option) (binding.Key, error) {
	bd := binding.NewEagerSingleton(b, creator, opts...)
	key := keyFor(bd, tag)
	return key, b.Bind(key, bd)
}

// BindInstance registers a pre-built value as a binding for T.
func BindInstance[T any](b *Builder, tag string, value T, opts ...binding.Option) (binding.Key, error) {
	bd := binding.NewInstance(value, opts...)
	key := keyFor(bd, tag)
	return key, b.Bind(key, bd)
}
