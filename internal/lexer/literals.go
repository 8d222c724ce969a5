package lexer

import (
	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
	"github.com/anthropic-idl/sdv-idlc/internal/textinterp"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
)

// scanLiteral dispatches to number scanning or to string/char/boolean/
// nullptr scanning depending on the leading byte, matching the top-level
// branch in original_source's CLexer::GetLiteral.
func (l *Lexer) scanLiteral(pos codepos.Position) (token.Token, codepos.Position, error) {
	if isDigit(pos.Current()) || pos.Current() == '.' {
		return l.scanNumber(pos)
	}
	return l.scanStringCharOrKeywordLiteral(pos)
}

var literalKeywords = []struct {
	word string
	lt   token.LiteralType
}{
	{"true", token.Boolean}, {"TRUE", token.Boolean},
	{"false", token.Boolean}, {"FALSE", token.Boolean},
	{"nullptr", token.NullPtr}, {"NULL", token.NullPtr},
}

func (l *Lexer) scanStringCharOrKeywordLiteral(pos codepos.Position) (token.Token, codepos.Position, error) {
	start := pos
	rest := pos.Remaining()

	for _, kw := range literalKeywords {
		if hasPrefixWordBoundary(rest, kw.word) {
			pos = pos.Advance(len(kw.word))
			tok := token.StartSnapshot(start, token.Literal)
			tok.Literal = kw.lt
			return tokenSpan(tok, start, pos), pos, nil
		}
	}

	enc := textinterp.ASCII
	switch pos.Current() {
	case 'u':
		pos = pos.Advance(1)
		if pos.Current() == '8' {
			enc = textinterp.UTF8
			pos = pos.Advance(1)
		} else {
			enc = textinterp.UTF16
		}
	case 'U':
		enc = textinterp.UTF32
		pos = pos.Advance(1)
	case 'L':
		enc = textinterp.Wide
		pos = pos.Advance(1)
	}

	raw := false
	if pos.Current() == 'R' {
		raw = true
		pos = pos.Advance(1)
	}

	var isString, isChar bool
	switch pos.Current() {
	case '"':
		isString = true
	case '\'':
		if raw {
			return token.Empty, pos, &compileerr.Error{
				Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
				Reason: "raw character literals are not supported",
			}
		}
		if enc == textinterp.UTF8 {
			return token.Empty, pos, &compileerr.Error{
				Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
				Reason: "UTF-8 character literals are not supported; use an ASCII character literal instead",
			}
		}
		isChar = true
	default:
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
			Reason: "expecting a literal",
		}
	}

	pos = pos.Advance(1) // skip opening quote

	var delimiter string
	if raw {
		d := ")"
		for i := 0; i < 16; i++ {
			if pos.HasEOF() {
				return token.Empty, pos, &compileerr.Error{
					Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
					Reason: "invalid raw string; unexpected end of input",
				}
			}
			if pos.Current() == '(' {
				break
			}
			d += string(pos.Current())
			pos = pos.Advance(1)
		}
		d += "\""
		if pos.Current() != '(' {
			return token.Empty, pos, &compileerr.Error{
				Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
				Reason: "invalid raw string; expecting '('",
			}
		}
		pos = pos.Advance(1)
		delimiter = d
	} else if isChar {
		delimiter = "'"
	} else {
		delimiter = "\""
	}

	decoded, consumed, err := textinterp.Decode(pos.Remaining(), delimiter, enc, raw)
	if err != nil {
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: pos.Line(), Column: pos.Column(),
			Reason: err.Error(),
		}
	}
	pos = pos.Advance(consumed)
	pos = pos.Advance(len(delimiter))

	lt := token.String
	if raw {
		lt = token.RawString
	}
	if isChar {
		lt = token.Character
		if decoded.Len() > 1 {
			lt, err = classifyCharSequence(enc, decoded.Len())
			if err != nil {
				return token.Empty, pos, &compileerr.Error{
					Kind: compileerr.Lexical, Line: pos.Line(), Column: pos.Column(),
					Reason: err.Error(),
				}
			}
		}
	}

	// No further digit/alpha may follow a literal (spec.md §4.3.3).
	if isAlnum(pos.Current()) {
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: pos.Line(), Column: pos.Column(),
			Reason: "invalid characters following literal",
		}
	}

	tok := token.StartSnapshot(start, token.Literal)
	tok.Literal = lt
	return tokenSpan(tok, start, pos), pos, nil
}

// classifyCharSequence validates multi-character literal lengths per
// spec.md §4.3.4: narrow sequences permit 2/4/8 chars (packed into a
// small integer); wide sequences permit 2 chars (32-bit wchar) or 2/4
// chars (16-bit wchar, here modeled as always-32-bit since Go has no
// native 16-bit wchar_t platform distinction — see DESIGN.md).
func classifyCharSequence(enc textinterp.Encoding, n int) (token.LiteralType, error) {
	switch enc {
	case textinterp.ASCII:
		if n == 2 || n == 4 || n == 8 {
			return token.CharacterSequence, nil
		}
		return 0, &litErr{"invalid character sequence; only 2, 4 or 8 characters are allowed"}
	case textinterp.Wide:
		if n == 2 {
			return token.CharacterSequence, nil
		}
		return 0, &litErr{"invalid character sequence; only 2 characters are allowed"}
	default:
		return 0, &litErr{"character sequences are only allowed with ASCII or wide characters"}
	}
}

type litErr struct{ s string }

func (e *litErr) Error() string { return e.s }
