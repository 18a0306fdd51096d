package binding

import (
	"sync"
	"sync/atomic"
)

// EagerSingletonBinding is a Singleton whose creation is forced by the
// container-ready signal instead of by first use. It registers itself with
// the builder at construction under a key with no context or argument
// discrimination; once the builder fires, every later resolution is a pure
// cache read.
//
// The cell and its guard are owned by the binding instance — there is no
// process-wide state.
type EagerSingletonBinding struct {
	contextType Token
	createdType Token
	creator     func(rc ResolutionContext) (any, error)

	mu   sync.Mutex
	cell atomic.Value // box
}

// box gives the atomic.Value a constant concrete type and lets it hold nil
// instances.
type box struct{ v any }

// NewEagerSingleton builds an EagerSingleton binding and hooks its forced
// creation into the builder's ready phase. A creator error during that phase
// surfaces to whoever triggers the ready signal; the cell stays empty and a
// later resolution may retry.
func NewEagerSingleton[T any](hook ReadyHook, creator func(rc ResolutionContext) (T, error), opts ...Option) *EagerSingletonBinding {
	s := newSettings(opts)
	b := &EagerSingletonBinding{
		contextType: s.context,
		createdType: TokenOf[T](),
		creator: func(rc ResolutionContext) (any, error) {
			return creator(rc)
		},
	}
	hook.OnReady(Key{Context: Any, Arg: Unit, Created: b.createdType}, func(rc ResolutionContext) error {
		_, err := b.get(rc)
		return err
	})
	return b
}

func (b *EagerSingletonBinding) ContextType() Token      { return b.contextType }
func (b *EagerSingletonBinding) ArgType() Token          { return Unit }
func (b *EagerSingletonBinding) CreatedType() Token      { return b.createdType }
func (b *EagerSingletonBinding) FactoryName() string     { return "eagerSingleton" }
func (b *EagerSingletonBinding) FactoryFullName() string { return "eagerSingleton" }

func (b *EagerSingletonBinding) GetFactory(rc ResolutionContext, _ Key) func(arg any) (any, error) {
	return func(any) (any, error) {
		return b.get(rc)
	}
}

// get is a double-checked read of the cell: lock-free once created, single
// creator run across any number of concurrent first-time callers.
func (b *EagerSingletonBinding) get(rc ResolutionContext) (any, error) {
	if v, ok := b.cell.Load().(box); ok {
		return v.v, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.cell.Load().(box); ok {
		return v.v, nil
	}

	v, err := b.creator(rc)
	if err != nil {
		return nil, err
	}
	b.cell.Store(box{v: v})
	return v, nil
}
