package binding_test

import (
	"bytes"
	"testing"

	"github.com/km-arc/go-bindery/binding"
)

type widget struct{}

func TestTokenOf_NamedType(t *testing.T) {
	tok := binding.TokenOf[bytes.Buffer]()
	if tok.String() != "bytes.Buffer" {
		t.Errorf("got %q, want bytes.Buffer", tok.String())
	}
}

func TestTokenOf_StructuralEquality(t *testing.T) {
	if binding.TokenOf[widget]() != binding.TokenOf[widget]() {
		t.Error("tokens for the same type should compare equal")
	}
	if binding.TokenOf[widget]() == binding.TokenOf[*widget]() {
		t.Error("value and pointer types should have distinct tokens")
	}
	if binding.TokenOf[int]() == binding.TokenOf[int64]() {
		t.Error("distinct basic types should have distinct tokens")
	}
}

func TestTokenOf_UnnamedTypes(t *testing.T) {
	if binding.TokenOf[*widget]() != binding.TokenOf[*widget]() {
		t.Error("pointer tokens should be stable")
	}
	if binding.TokenOf[[]string]().String() != "[]string" {
		t.Errorf("got %q, want []string", binding.TokenOf[[]string]().String())
	}
}

func TestSentinelTokens(t *testing.T) {
	if !binding.Any.IsAny() {
		t.Error("Any.IsAny() should be true")
	}
	if !binding.Unit.IsUnit() {
		t.Error("Unit.IsUnit() should be true")
	}
	if binding.TokenOf[widget]().IsAny() || binding.TokenOf[widget]().IsUnit() {
		t.Error("user tokens must not match the sentinels")
	}
}

// ── Key ─────────────────────────────────────────────────────────────────────

func TestKey_StructuralEquality(t *testing.T) {
	a := binding.Key{Context: binding.Any, Arg: binding.Unit, Created: binding.TokenOf[widget](), Tag: "x"}
	b := binding.Key{Context: binding.Any, Arg: binding.Unit, Created: binding.TokenOf[widget](), Tag: "x"}
	if a != b {
		t.Error("identical keys should compare equal")
	}

	b.Tag = "y"
	if a == b {
		t.Error("keys differing in tag should not compare equal")
	}
}

func TestKey_String(t *testing.T) {
	key := binding.Key{
		Context: binding.Any,
		Arg:     binding.TokenOf[int](),
		Created: binding.TokenOf[bytes.Buffer](),
		Tag:     "w",
	}
	want := `bind<bytes.Buffer>(tag = "w") { int -> }`
	if key.String() != want {
		t.Errorf("got %q\nwant %q", key.String(), want)
	}
}

func TestKey_String_Minimal(t *testing.T) {
	key := binding.Key{Context: binding.Any, Arg: binding.Unit, Created: binding.TokenOf[int]()}
	if key.String() != "bind<int>" {
		t.Errorf("got %q, want bind<int>", key.String())
	}
}
