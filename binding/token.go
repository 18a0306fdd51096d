package binding

import "reflect"

// Token is a structural type descriptor. One is computed when a binding is
// registered and from then on tokens are compared as plain values — the
// resolution path never inspects runtime types.
type Token struct {
	pkg  string
	name string
}

// Any is the context token that matches every resolution context.
var Any = Token{name: "*"}

// Unit is the argument token of bindings that take no argument
// (Provider, Singleton, EagerSingleton, Instance).
var Unit = Token{name: "()"}

// TokenOf computes the Token for type T. Call it once, at registration.
func TokenOf[T any]() Token {
	return tokenFor(reflect.TypeOf((*T)(nil)).Elem())
}

func tokenFor(t reflect.Type) Token {
	if t.Name() != "" {
		return Token{pkg: t.PkgPath(), name: t.Name()}
	}
	// Unnamed types (pointers, slices, maps, funcs) get their spelled-out
	// form; it is stable for a given type within a build.
	return Token{name: t.String()}
}

// IsAny reports whether the token is the wildcard context token.
func (t Token) IsAny() bool { return t == Any }

// IsUnit reports whether the token is the no-argument token.
func (t Token) IsUnit() bool { return t == Unit }

// String returns the package-qualified type name, or the sentinel spelling
// for Any and Unit.
func (t Token) String() string {
	if t.pkg == "" {
		return t.name
	}
	return t.pkg + "." + t.name
}
