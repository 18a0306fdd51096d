package binding

import "fmt"

// FactoryBinding runs its creator on every resolution. No caching, no
// locking: the binding holds no mutable state at all.
type FactoryBinding struct {
	contextType Token
	argType     Token
	createdType Token
	creator     func(rc ResolutionContext, arg any) (any, error)
}

// NewFactory builds a Factory binding from a typed creator.
func NewFactory[A, T any](creator func(rc ResolutionContext, arg A) (T, error), opts ...Option) *FactoryBinding {
	s := newSettings(opts)
	return &FactoryBinding{
		contextType: s.context,
		argType:     TokenOf[A](),
		createdType: TokenOf[T](),
		creator: func(rc ResolutionContext, arg any) (any, error) {
			a, ok := arg.(A)
			if !ok {
				return nil, fmt.Errorf("factory for %s: argument is %T, want %s", TokenOf[T](), arg, TokenOf[A]())
			}
			return creator(rc, a)
		},
	}
}

func (b *FactoryBinding) ContextType() Token      { return b.contextType }
func (b *FactoryBinding) ArgType() Token          { return b.argType }
func (b *FactoryBinding) CreatedType() Token      { return b.createdType }
func (b *FactoryBinding) FactoryName() string     { return "factory" }
func (b *FactoryBinding) FactoryFullName() string { return "factory" }

func (b *FactoryBinding) GetFactory(rc ResolutionContext, _ Key) func(arg any) (any, error) {
	return func(arg any) (any, error) {
		return b.creator(rc, arg)
	}
}
