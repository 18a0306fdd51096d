package binding

// InstanceBinding wraps a single pre-built value. Resolution always returns
// that exact value — no laziness, no locking, no reference policy.
type InstanceBinding struct {
	contextType Token
	createdType Token
	value       any
}

// NewInstance builds an Instance binding around value.
func NewInstance[T any](value T, opts ...Option) *InstanceBinding {
	s := newSettings(opts)
	return &InstanceBinding{
		contextType: s.context,
		createdType: TokenOf[T](),
		value:       value,
	}
}

func (b *InstanceBinding) ContextType() Token      { return b.contextType }
func (b *InstanceBinding) ArgType() Token          { return Unit }
func (b *InstanceBinding) CreatedType() Token      { return b.createdType }
func (b *InstanceBinding) FactoryName() string     { return "instance" }
func (b *InstanceBinding) FactoryFullName() string { return "instance" }

func (b *InstanceBinding) GetFactory(ResolutionContext, Key) func(arg any) (any, error) {
	return func(any) (any, error) {
		return b.value, nil
	}
}
