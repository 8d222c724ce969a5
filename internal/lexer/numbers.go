package lexer

import (
	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
)

// scanNumber recognizes integer, decimal-float, hex-float and fixed-point
// literals per spec.md §4.3.3, grounded on original_source's
// CLexer::GetLiteral numeric branch (the digit-collection-then-suffix
// state machine below mirrors its prefix/suffix detection verbatim).
func (l *Lexer) scanNumber(pos codepos.Position) (token.Token, codepos.Position, error) {
	start := pos
	lt := token.DecimalInteger
	collection := "0123456789"

	if pos.Current() == '0' && lower1(pos.Peek(1)) == 'x' {
		pos = pos.Advance(2)
		collection = "0123456789abcdefABCDEF"
		lt = token.HexInteger
	} else if pos.Current() == '0' && lower1(pos.Peek(1)) == 'b' {
		pos = pos.Advance(2)
		collection = "01"
		lt = token.BinaryInteger
	} else if pos.Current() == '0' && pos.Peek(1) != 'e' && pos.Peek(1) != 'E' && pos.Peek(1) != '.' {
		// Only treat as octal if there's at least one more digit; a bare
		// "0" stays decimal.
		if inSet(pos.Peek(1), "01234567") {
			collection = "01234567"
			lt = token.OctalInteger
		}
	}

	if !inSet(pos.Current(), collection) && pos.Current() != '.' {
		return token.Empty, pos, &compileerr.Error{
			Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
			Reason: "invalid number literal",
		}
	}

	for inSet(pos.Current(), collection) || pos.Current() == '\'' {
		pos = pos.Advance(1)
	}

	suffix := lower1(pos.Current())
	isFloatTrigger := (lt == token.DecimalInteger && (suffix == '.' || suffix == 'e' || suffix == 'd')) ||
		(lt == token.HexInteger && (suffix == '.' || suffix == 'p'))

	if isFloatTrigger {
		if pos.Current() == '.' {
			pos = pos.Advance(1)
			for inSet(pos.Current(), collection) || pos.Current() == '\'' {
				pos = pos.Advance(1)
			}
		}

		exponent := false
		if lt == token.DecimalInteger {
			lt = token.DecimalFloat
			if lower1(pos.Current()) == 'e' {
				exponent = true
				pos = pos.Advance(1)
			} else if lower1(pos.Current()) == 'd' {
				lt = token.FixedPoint
				pos = pos.Advance(1)
			}
		}
		if lt == token.HexInteger {
			lt = token.HexFloat
			if lower1(pos.Current()) == 'p' {
				exponent = true
				pos = pos.Advance(1)
			}
		}

		if exponent {
			if pos.Current() == '+' || pos.Current() == '-' {
				pos = pos.Advance(1)
			}
			if !isDigit(pos.Current()) {
				return token.Empty, pos, &compileerr.Error{
					Kind: compileerr.Lexical, Line: start.Line(), Column: start.Column(),
					Reason: "invalid float literal; exponent requires at least one digit",
				}
			}
			for isDigit(pos.Current()) {
				pos = pos.Advance(1)
			}
		}

		if lt != token.FixedPoint && inSet(pos.Current(), "fFlL") {
			pos = pos.Advance(1)
		}
	} else {
		unsigned := false
		if lower1(pos.Current()) == 'u' {
			pos = pos.Advance(1)
			unsigned = true
		}
		if lower1(pos.Current()) == 'l' {
			if pos.Current() == pos.Peek(1) {
				pos = pos.Advance(2)
			} else {
				pos = pos.Advance(1)
			}
			if !unsigned && lower1(pos.Current()) == 'u' {
				pos = pos.Advance(1)
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

func lower1(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func inSet(b byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}
