package binding

import (
	"fmt"

	"github.com/km-arc/go-bindery/refs"
	"github.com/km-arc/go-bindery/scope"
)

// MultitonBinding caches one instance per distinct argument value. The first
// resolution for an argument runs the creator; later resolutions with an
// equal argument return the cached instance, re-creating it only if its
// reference policy let the value be reclaimed.
//
// Arguments must be comparable: they are the cache keys.
type MultitonBinding struct {
	contextType Token
	argType     Token
	createdType Token
	creator     func(rc ResolutionContext, arg any) (any, error)
	sc          scope.Scope
	ref         refs.Maker
}

// NewMultiton builds a Multiton binding from a typed creator. Without
// [InScope] the binding owns a private registry shared by all contexts.
func NewMultiton[A, T any](creator func(rc ResolutionContext, arg A) (T, error), opts ...Option) *MultitonBinding {
	s := newSettings(opts)
	sc := s.scope
	if sc == nil {
		sc = scope.NewUnbounded()
	}
	return &MultitonBinding{
		contextType: s.context,
		argType:     TokenOf[A](),
		createdType: TokenOf[T](),
		sc:          sc,
		ref:         s.ref,
		creator: func(rc ResolutionContext, arg any) (any, error) {
			a, ok := arg.(A)
			if !ok {
				return nil, fmt.Errorf("multiton for %s: argument is %T, want %s", TokenOf[T](), arg, TokenOf[A]())
			}
			return creator(rc, a)
		},
	}
}

func (b *MultitonBinding) ContextType() Token  { return b.contextType }
func (b *MultitonBinding) ArgType() Token      { return b.argType }
func (b *MultitonBinding) CreatedType() Token  { return b.createdType }
func (b *MultitonBinding) FactoryName() string { return "multiton" }

func (b *MultitonBinding) FactoryFullName() string {
	return fullName("multiton", b.ref)
}

func (b *MultitonBinding) GetFactory(rc ResolutionContext, _ Key) func(arg any) (any, error) {
	return func(arg any) (any, error) {
		reg := b.sc.GetRegistry(rc.Receiver, rc.Value)
		return reg.GetOrCreate(arg, func() (any, refs.Reference, error) {
			return b.ref.Make(func() (any, error) {
				return b.creator(rc, arg)
			})
		})
	}
}
