package binding

// ProviderBinding is a Factory whose argument type is fixed to [Unit]: the
// creator takes no argument and runs on every resolution.
type ProviderBinding struct {
	contextType Token
	createdType Token
	creator     func(rc ResolutionContext) (any, error)
}

// NewProvider builds a Provider binding from a typed creator.
func NewProvider[T any](creator func(rc ResolutionContext) (T, error), opts ...Option) *ProviderBinding {
	s := newSettings(opts)
	return &ProviderBinding{
		contextType: s.context,
		createdType: TokenOf[T](),
		creator: func(rc ResolutionContext) (any, error) {
			return creator(rc)
		},
	}
}

func (b *ProviderBinding) ContextType() Token      { return b.contextType }
func (b *ProviderBinding) ArgType() Token          { return Unit }
func (b *ProviderBinding) CreatedType() Token      { return b.createdType }
func (b *ProviderBinding) FactoryName() string     { return "provider" }
func (b *ProviderBinding) FactoryFullName() string { return "provider" }

func (b *ProviderBinding) GetFactory(rc ResolutionContext, _ Key) func(arg any) (any, error) {
	return func(any) (any, error) {
		return b.creator(rc)
	}
}
