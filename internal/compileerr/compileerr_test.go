package compileerr

import (
	"strings"
	"testing"
)

func TestWithPath_OnlyAssignsOnce(t *testing.T) {
	e := New(Lexical, 1, 1, "", "unexpected byte")
	e.WithPath("outer.idl")
	e.WithPath("inner.idl") // must not overwrite

	if e.File != "outer.idl" {
		t.Errorf("File = %q, want %q (WithPath must not overwrite an existing path)", e.File, "outer.idl")
	}
}

func TestWithSource_OnlyAssignsOnce(t *testing.T) {
	e := New(Lexical, 1, 1, "", "boom")
	e.WithSource("first")
	e.WithSource("second")
	if e.Source != "first" {
		t.Errorf("Source = %q, want %q", e.Source, "first")
	}
}

func TestFormat_WithAndWithoutPath(t *testing.T) {
	withPath := New(Lexical, 3, 5, "@", "unexpected byte").WithPath("foo.idl")
	if got := withPath.Format(false); !strings.Contains(got, "foo.idl:3:5") {
		t.Errorf("Format() = %q, want it to contain %q", got, "foo.idl:3:5")
	}

	withoutPath := New(CLI, 0, 0, "-Z", "unknown option")
	if got := withoutPath.Format(false); !strings.Contains(got, "unknown option") {
		t.Errorf("Format() without a path should still render the reason: %q", got)
	}
	if strings.Contains(withoutPath.Format(false), "foo.idl") {
		t.Errorf("Format() without a path must not invent one")
	}
}

func TestFormat_RendersCaretSnippet(t *testing.T) {
	e := New(Lexical, 2, 3, "x", "unexpected byte")
	e.WithSource("line one\nli x cont\n")
	got := e.Format(false)
	if !strings.Contains(got, "li x cont") {
		t.Errorf("Format() must include the offending source line, got %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("Format() must render a caret, got %q", got)
	}
}

func TestError_SatisfiesErrorInterface(t *testing.T) {
	var err error = New(ConstExpr, 1, 1, "", "division by zero")
	if err.Error() == "" {
		t.Errorf("Error() must not be empty")
	}
}

func TestList_Error(t *testing.T) {
	empty := List{}
	if empty.Error() != "" {
		t.Errorf("empty List.Error() = %q, want empty string", empty.Error())
	}

	single := List{New(Lexical, 1, 1, "", "boom")}
	if single.Error() != single[0].Error() {
		t.Errorf("single-element List.Error() should delegate to the one Error")
	}

	multi := List{
		New(Lexical, 1, 1, "", "first"),
		New(Lexical, 2, 1, "", "second"),
	}
	got := multi.Error()
	if !strings.Contains(got, "2 errors") {
		t.Errorf("List.Error() = %q, want a count of 2 errors", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("List.Error() must include every member error's text")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Lexical, "lexical"},
		{Preprocessor, "preprocessor"},
		{ConstExpr, "constant expression"},
		{Marshalling, "marshalling"},
		{CLI, "cli"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
