package lexer

import (
	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
)

// separator1 lists the single-byte separators; `::` is the one multi-byte
// separator (spec.md §4.3.2 item 6).
var separator1 = map[byte]bool{
	'{': true, '}': true, '(': true, ')': true, '[': true, ']': true,
	';': true, ',': true, '.': true, ':': true,
}

func (l *Lexer) scanSeparator(pos codepos.Position) (token.Token, codepos.Position, error) {
	start := pos
	c := pos.Current()
	if c == ':' && pos.Peek(1) == ':' {
		pos = pos.Advance(2)
	} else if separator1[c] {
		pos = pos.Advance(1)
	} else {
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: pos.Line(), Column: pos.Column(),
			Token: string(c), Reason: "unexpected separator byte",
		}
	}
	tok := token.StartSnapshot(start, token.Separator)
	return tokenSpan(tok, start, pos), pos, nil
}

// operatorSpellings is checked longest-match-first; spec.md §4.3.2 item 6
// enumerates the full operator set.
var operatorSpellings = []string{
	"<<=", ">>=",
	"##", "::", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+", "-", "*", "/", "%", "^", "~", ",", "?", "#", "|", "&", "=", "!", "<", ">",
}

func (l *Lexer) scanOperator(pos codepos.Position) (token.Token, codepos.Position, error) {
	start := pos
	rest := pos.Remaining()
	for _, op := range operatorSpellings {
		if len(rest) >= len(op) && rest[:len(op)] == op {
			pos = pos.Advance(len(op))
			tok := token.StartSnapshot(start, token.Operator)
			return tokenSpan(tok, start, pos), pos, nil
		}
	}
	return token.Empty, pos, &compileerr.Error{
		Kind: compileerr.Lexical, Line: pos.Line(), Column: pos.Column(),
		Token: string(pos.Current()), Reason: "unexpected operator byte",
	}
}
