package lexer

import (
	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
)

// scanIdentifierOrKeyword consumes [A-Za-z_][A-Za-z_0-9]* (including UTF-8
// lead/continuation bytes) and classifies the result as Keyword or
// Identifier. If case-insensitive matching is enabled and the identifier
// differs from a reserved word only by case, this raises a "collides with
// reserved keyword" error (spec.md §4.3.2 item 4).
func (l *Lexer) scanIdentifierOrKeyword(pos codepos.Position) (token.Token, codepos.Position, error) {
	start := pos
	pos = pos.Advance(1)
	for isIdentByte(pos.Current()) {
		pos = pos.Advance(1)
	}

	text := sliceSpan(start, pos)
	if c := pos.Current(); c == '"' || c == '\'' {
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
			Token: text, Reason: "invalid identifier '" + text + "': directly followed by a quote",
		}
	}
	typ := token.Identifier
	if l.isKeyword(text) {
		typ = token.Keyword
	} else if !l.caseSensitive && l.keywordsLower[lower(text)] {
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
			Token: text, Reason: "identifier '" + text + "' collides with a reserved keyword (case-insensitive mode)",
		}
	}

	tok := token.StartSnapshot(start, typ)
	tok = tokenSpan(tok, start, pos)
	return tok, pos, nil
}

// isKeyword reports whether text is an exact-spelling match for a reserved
// word. This lookup is independent of l.caseSensitive: an exact match
// always classifies as a Keyword, even in case-insensitive mode — only a
// match that differs by case alone is a collision (see the caller).
func (l *Lexer) isKeyword(text string) bool {
	return l.keywordsExact[text]
}

func isIdentByte(b byte) bool {
	return isAlnum(b) || (b >= 0xC0 && b <= 0xF7) || (b >= 0x80 && b <= 0xBF)
}

// sliceSpan extracts the text spanned between two positions sharing the
// same underlying buffer.
func sliceSpan(start, end codepos.Position) string {
	length := end.Offset() - start.Offset()
	full := start.Remaining()
	if length < 0 || length > len(full) {
		return full
	}
	return full[:length]
}

// scanIdentOrLiteralPrefixed handles bytes classified idlit: the letters
// that may begin an encoded or raw string/char literal (u, U, L, R) or the boolean
// and nullptr keywords, falling back to an ordinary identifier otherwise
// (spec.md §4.3.2 item 5, original lexer.cpp's `idlit` case).
func (l *Lexer) scanIdentOrLiteralPrefixed(pos codepos.Position) (token.Token, codepos.Position, error) {
	n1, n2, n3 := pos.Peek(1), pos.Peek(2), pos.Peek(3)
	if n1 == '"' || n1 == '\'' {
		return l.scanLiteral(pos)
	}
	if isAlnum(n1) && (n2 == '"' || n2 == '\'') {
		return l.scanLiteral(pos)
	}
	if isAlnum(n1) && isAlpha(n2) && (n3 == '"' || n3 == '\'') {
		return l.scanLiteral(pos)
	}

	rest := pos.Remaining()
	for _, kw := range []string{"true", "TRUE", "false", "FALSE", "nullptr", "NULL"} {
		if hasPrefixWordBoundary(rest, kw) {
			return l.scanLiteral(pos)
		}
	}

	return l.scanIdentifierOrKeyword(pos)
}

func hasPrefixWordBoundary(s, word string) bool {
	if len(s) < len(word) || s[:len(word)] != word {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	return !isAlnum(s[len(word)])
}
