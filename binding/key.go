package binding

import (
	"fmt"
	"strings"
)

// Key identifies one binding in a container: the context type the binding is
// restricted to, the argument type its factory consumes, the type it creates,
// and an optional tag to tell apart several bindings of the same shape.
//
// Key is a comparable value type; equality is structural over all four
// fields.
type Key struct {
	Context Token
	Arg     Token
	Created Token
	Tag     string
}

// String renders the key the way container diagnostics print it, e.g.
//
//	bind<*pkg.Database>(tag = "replica") { pkg.Shard -> }
func (k Key) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bind<%s>", k.Created)
	if k.Tag != "" {
		fmt.Fprintf(&b, "(tag = %q)", k.Tag)
	}
	if !k.Arg.IsUnit() {
		fmt.Fprintf(&b, " { %s -> }", k.Arg)
	}
	if !k.Context.IsAny() {
		fmt.Fprintf(&b, " on context<%s>", k.Context)
	}
	return b.String()
}
