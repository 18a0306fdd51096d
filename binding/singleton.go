package binding

import (
	"github.com/km-arc/go-bindery/refs"
	"github.com/km-arc/go-bindery/scope"
)

// SingletonBinding caches a single instance per binding — a Multiton with
// exactly one possible argument. Without [InScope] the cache is a
// binding-private single slot; with a scope the instance lives in whichever
// registry the scope selects for the resolution context, keyed by the
// binding itself.
type SingletonBinding struct {
	contextType Token
	createdType Token
	creator     func(rc ResolutionContext) (any, error)
	sc          scope.Scope
	reg         *scope.SingleItemRegistry // used when sc is nil
	ref         refs.Maker
}

// NewSingleton builds a Singleton binding from a typed creator.
func NewSingleton[T any](creator func(rc ResolutionContext) (T, error), opts ...Option) *SingletonBinding {
	s := newSettings(opts)
	b := &SingletonBinding{
		contextType: s.context,
		createdType: TokenOf[T](),
		sc:          s.scope,
		ref:         s.ref,
		creator: func(rc ResolutionContext) (any, error) {
			return creator(rc)
		},
	}
	if b.sc == nil {
		b.reg = scope.NewSingleItem()
	}
	return b
}

func (b *SingletonBinding) ContextType() Token  { return b.contextType }
func (b *SingletonBinding) ArgType() Token      { return Unit }
func (b *SingletonBinding) CreatedType() Token  { return b.createdType }
func (b *SingletonBinding) FactoryName() string { return "singleton" }

func (b *SingletonBinding) FactoryFullName() string {
	return fullName("singleton", b.ref)
}

func (b *SingletonBinding) GetFactory(rc ResolutionContext, _ Key) func(arg any) (any, error) {
	return func(any) (any, error) {
		var reg scope.Registry = b.reg
		if b.sc != nil {
			reg = b.sc.GetRegistry(rc.Receiver, rc.Value)
		}
		// The binding is its own cache key: unique within any shared
		// registry, constant across resolutions.
		return reg.GetOrCreate(b, func() (any, refs.Reference, error) {
			return b.ref.Make(func() (any, error) {
				return b.creator(rc)
			})
		})
	}
}
