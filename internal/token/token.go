// Package token implements the captured-span Token type (spec.md §3.2) and
// the cursor-aware Token List (spec.md §3.3) that the lexer and constant
// expression evaluator build on.
package token

import "github.com/anthropic-idl/sdv-idlc/internal/codepos"

// Type is the coarse classification of a token.
type Type int

const (
	// Undefined marks the empty token: a zero-length sentinel used as an
	// end-of-input terminator. It compares unequal to every other token by
	// type even when both texts happen to be empty.
	Undefined Type = iota
	Whitespace
	Comment
	Identifier
	Keyword
	Separator
	Operator
	Literal
)

// LiteralType further classifies a Literal token. It is meaningless for any
// other Type.
type LiteralType int

const (
	NotLiteral LiteralType = iota
	DecimalInteger
	HexInteger
	OctalInteger
	BinaryInteger
	DecimalFloat
	HexFloat
	FixedPoint
	Boolean
	NullPtr
	String
	RawString
	Character
	CharacterSequence
)

// Context is an opaque cross-file attribution handle. The lexer stamps it
// onto every token it produces; the compiler front-end is the only thing
// that interprets it (e.g. to resolve which included file a token came
// from). The core treats it as opaque data.
type Context any

// Token is an immutable, captured span of source text together with its
// classification. A Token borrows its Text from the source buffer it was
// cut from and must not outlive that buffer (spec.md §9).
type Token struct {
	StartLine   int
	StartCol    int
	EndLine     int
	EndCol      int
	Text        string
	Type        Type
	Literal     LiteralType
	Context     Context
}

// Empty is the canonical undefined/end-of-input token.
var Empty = Token{}

// IsEmpty reports whether t is the zero-length undefined sentinel.
func (t Token) IsEmpty() bool {
	return t.Type == Undefined && t.Text == ""
}

// Equal implements the equality the original tokenlist.cpp relies on for
// insertion-merge: two tokens are equal when type, literal sub-tag and text
// all match. Position is deliberately excluded — two tokens produced by
// macro re-expansion at different offsets but with identical text/type are
// still "the same token" for merge purposes (spec.md §3.3).
func (t Token) Equal(o Token) bool {
	return t.Type == o.Type && t.Literal == o.Literal && t.Text == o.Text
}

// String returns the token's captured text, satisfying fmt.Stringer and
// matching the original CToken's implicit std::string conversion used
// throughout the C++ lexer/compile-error code.
func (t Token) String() string { return t.Text }

// StartSnapshot captures a token seeded with p's current position, ready to
// have its text/end stamped in once the scanner has consumed the span
// (spec.md §4.1 snapshot_as_token_start).
func StartSnapshot(p codepos.Position, typ Type) Token {
	return Token{
		StartLine: p.Line(),
		StartCol:  p.Column(),
		Type:      typ,
	}
}

// UpdateLocation stamps t's end position and captured text using p's
// current cursor and the original starting offset startOffset within src.
func UpdateLocation(t Token, p codepos.Position, src string, startOffset int) Token {
	t.EndLine = p.Line()
	t.EndCol = p.Column()
	t.Text = src[startOffset:p.Offset()]
	return t
}
