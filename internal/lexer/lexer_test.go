package lexer

import (
	"fmt"
	"testing"

	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
	"github.com/gkampitakis/go-snaps/snaps"
)

func lexOne(t *testing.T, src string, opts ...Option) (token.Token, codepos.Position) {
	t.Helper()
	l := New(opts...)
	pos := codepos.New(src, "<test>")
	tok, newPos, err := l.GetToken(pos, nil, NopCallback{})
	if err != nil {
		t.Fatalf("GetToken(%q): unexpected error: %v", src, err)
	}
	return tok, newPos
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		src  string
		text string
		typ  token.Type
	}{
		{"plain", "identifier", "identifier", token.Identifier},
		{"leading underscore", "__identifier", "__identifier", token.Identifier},
		{"single leading underscore", "_attribute", "_attribute", token.Identifier},
		{"internal underscore", "iden_tifier", "iden_tifier", token.Identifier},
		{"leading whitespace", "  identifier", "identifier", token.Identifier},
		{"keyword prefixed by underscore is identifier", "_attribute", "_attribute", token.Identifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, _ := lexOne(t, tt.src)
			if tok.Text != tt.text {
				t.Fatalf("Text = %q, want %q", tok.Text, tt.text)
			}
			if tok.Type != tt.typ {
				t.Fatalf("Type = %v, want %v", tok.Type, tt.typ)
			}
		})
	}
}

func TestInvalidIdentifier(t *testing.T) {
	tests := []string{"1identifier", "identifier\"", "identifier'"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			l := New()
			pos := codepos.New(src, "<test>")
			_, _, err := l.GetToken(pos, nil, NopCallback{})
			if err == nil {
				t.Fatalf("GetToken(%q): expected error, got none", src)
			}
		})
	}
}

func TestKeyword(t *testing.T) {
	l := New()
	pos := codepos.New("attribute", "<test>")
	tok, _, err := l.GetToken(pos, nil, NopCallback{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.Keyword {
		t.Fatalf("Type = %v, want Keyword", tok.Type)
	}

	// Case-different spelling is an identifier when case-sensitive...
	l2 := New(WithCaseSensitive(true))
	pos2 := codepos.New("AttriBUTE", "<test>")
	tok2, _, err := l2.GetToken(pos2, nil, NopCallback{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok2.Type != token.Identifier {
		t.Fatalf("Type = %v, want Identifier (case-sensitive)", tok2.Type)
	}

	// ...but a collision error when case-insensitive.
	l3 := New(WithCaseSensitive(false))
	pos3 := codepos.New("AttriBUTE", "<test>")
	_, _, err = l3.GetToken(pos3, nil, NopCallback{})
	if err == nil {
		t.Fatal("expected case-collision error, got none")
	}
}

func TestSeparator(t *testing.T) {
	for _, src := range []string{"{", "}", "(", ")", "[", "]", ":", ";", "."} {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Type != token.Separator {
				t.Fatalf("Type = %v, want Separator", tok.Type)
			}
		})
	}
	tok, _ := lexOne(t, "::")
	if tok.Text != "::" || tok.Type != token.Separator {
		t.Fatalf("got %q/%v, want \"::\"/Separator", tok.Text, tok.Type)
	}
}

func TestOperator(t *testing.T) {
	for _, src := range []string{
		"+", "-", "*", "/", "%", "^", "~", ",", "|", "||", "&", "&&",
		"=", "==", "!", "!=", "<", "<=", ">", ">=",
	} {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Type != token.Operator {
				t.Fatalf("Type = %v, want Operator", tok.Type)
			}
		})
	}
}

func TestDecimalIntegerLiteral(t *testing.T) {
	tests := []string{"1234", "1234u", "1234U", "1234l", "1234L", "1234ul", "1234UL", "1234ll", "1234LL", "1234ull", "1234ULL"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Literal != token.DecimalInteger {
				t.Fatalf("Literal = %v, want DecimalInteger", tok.Literal)
			}
		})
	}
}

func TestOctalIntegerLiteral(t *testing.T) {
	tok, _ := lexOne(t, "01234")
	if tok.Text != "01234" || tok.Literal != token.OctalInteger {
		t.Fatalf("got %q/%v, want \"01234\"/OctalInteger", tok.Text, tok.Literal)
	}
}

func TestHexIntegerLiteral(t *testing.T) {
	tests := []string{"0xaBcDu", "0xaBcDU", "0xaBcDl", "0xaBcDL", "0xaBcDul", "0xaBcDUL", "0xaBcDull", "0xaBcDULL"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Literal != token.HexInteger {
				t.Fatalf("Literal = %v, want HexInteger", tok.Literal)
			}
		})
	}
}

func TestBinaryIntegerLiteral(t *testing.T) {
	tok, _ := lexOne(t, "0b1010")
	if tok.Text != "0b1010" || tok.Literal != token.BinaryInteger {
		t.Fatalf("got %q/%v, want \"0b1010\"/BinaryInteger", tok.Text, tok.Literal)
	}
}

func TestDecimalFloatingPointLiteral(t *testing.T) {
	tests := []string{"1234.", "1234.5", ".5", "1234e5", "1234e-5f", "1234e+5F", "1234e-5L", "1234e+5l"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Literal != token.DecimalFloat {
				t.Fatalf("Literal = %v, want DecimalFloat", tok.Literal)
			}
		})
	}
}

func TestHexadecimalFloatingPointLiteral(t *testing.T) {
	tests := []string{"0x1ffp10", "0x0p-1", "0x1.p0", "0xf.p-1", "0x0.123p-1", "0xa.bp10l"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Literal != token.HexFloat {
				t.Fatalf("Literal = %v, want HexFloat", tok.Literal)
			}
		})
	}
}

func TestFixedPointLiteral(t *testing.T) {
	tests := []string{"1234.d", "1234.5D", ".5D"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Literal != token.FixedPoint {
				t.Fatalf("Literal = %v, want FixedPoint", tok.Literal)
			}
		})
	}
}

func TestStringLiteralEncodingPrefixes(t *testing.T) {
	tests := []struct {
		src string
		lt  token.LiteralType
	}{
		{`"..."`, token.String},
		{`R"abc(...")abc..")abc"`, token.RawString},
		{`u8"..."`, token.String},
		{`u8R"abc(...")abc..")abc"`, token.RawString},
		{`u"..."`, token.String},
		{`uR"abc(...")abc..")abc"`, token.RawString},
		{`U"..."`, token.String},
		{`UR"abc(...")abc..")abc"`, token.RawString},
		{`L"..."`, token.String},
		{`LR"abc(...")abc..")abc"`, token.RawString},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok, _ := lexOne(t, tt.src)
			if tok.Text != tt.src {
				t.Fatalf("Text = %q, want %q", tok.Text, tt.src)
			}
			if tok.Type != token.Literal {
				t.Fatalf("Type = %v, want Literal", tok.Type)
			}
			if tok.Literal != tt.lt {
				t.Fatalf("Literal = %v, want %v", tok.Literal, tt.lt)
			}
		})
	}
}

func TestCharacterLiteral(t *testing.T) {
	tests := []string{`'x'`, `u'x'`, `U'x'`, `L'x'`}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Text != src {
				t.Fatalf("Text = %q, want %q", tok.Text, src)
			}
			if tok.Literal != token.Character {
				t.Fatalf("Literal = %v, want Character", tok.Literal)
			}
		})
	}
}

func TestBooleanAndNullptrLiterals(t *testing.T) {
	tests := []string{"true", "TRUE", "false", "FALSE", "nullptr", "NULL"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tok, _ := lexOne(t, src)
			if tok.Type != token.Literal {
				t.Fatalf("Type = %v, want Literal", tok.Type)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	l := New()
	pos := codepos.New("", "<test>")
	tok, _, err := l.GetToken(pos, nil, NopCallback{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tok.IsEmpty() {
		t.Fatalf("expected empty token at EOF, got %+v", tok)
	}
}

func TestUnterminatedComment(t *testing.T) {
	l := New()
	pos := codepos.New("/* never closes", "<test>")
	_, _, err := l.GetToken(pos, nil, NopCallback{})
	if err == nil {
		t.Fatal("expected unterminated comment error, got none")
	}
}

func TestLineComment(t *testing.T) {
	l := New()
	pos := codepos.New("// trailing comment\nidentifier", "<test>")

	var comments []token.Token
	cb := callbackFunc{onComment: func(tok token.Token) { comments = append(comments, tok) }}
	tok, _, err := l.GetToken(pos, nil, cb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Text != "identifier" {
		t.Fatalf("Text = %q, want \"identifier\"", tok.Text)
	}
	if len(comments) != 1 || comments[0].Text != "// trailing comment" {
		t.Fatalf("comments = %+v, want one \"// trailing comment\"", comments)
	}
}

// TestTokenStreamSnapshot dumps the full token stream for a representative
// interface declaration, the same shape of assertion the teacher's own
// go-snaps-based fixture tests use for its AST/bytecode dumps.
func TestTokenStreamSnapshot(t *testing.T) {
	const src = `interface Calculator {
	const long MAX_OPERANDS = 0xaBcDUL;
	long add(in long a, in long b);
};
`
	l := New()
	pos := codepos.New(src, "calculator.idl")
	var dump []string
	for {
		tok, next, err := l.GetToken(pos, nil, NopCallback{})
		if err != nil {
			t.Fatalf("GetToken: unexpected error: %v", err)
		}
		if tok.IsEmpty() {
			break
		}
		dump = append(dump, fmt.Sprintf("%d:%d %v %q", tok.StartLine, tok.StartCol, tok.Type, tok.Text))
		pos = next
	}
	snaps.MatchSnapshot(t, dump)
}

// callbackFunc is a minimal Callback adapter for exercising whitespace and
// comment notifications without a stateful mock type.
type callbackFunc struct {
	onWhitespace func(token.Token)
	onComment    func(token.Token)
}

func (c callbackFunc) InsertWhitespace(tok token.Token) {
	if c.onWhitespace != nil {
		c.onWhitespace(tok)
	}
}
func (c callbackFunc) InsertComment(tok token.Token) {
	if c.onComment != nil {
		c.onComment(tok)
	}
}
func (c callbackFunc) Preprocessor(pos codepos.Position) (codepos.Position, error) {
	return NopCallback{}.Preprocessor(pos)
}
