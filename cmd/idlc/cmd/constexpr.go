package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/constvariant"
	"github.com/anthropic-idl/sdv-idlc/internal/lexer"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
	"github.com/spf13/cobra"
)

var constexprCmd = &cobra.Command{
	Use:   "constexpr <expression>",
	Short: "Fold a C-style constant expression through the Const Variant engine",
	Long: `constexpr tokenizes and evaluates a single constant expression using the
same Const Variant arithmetic engine (internal/constvariant) a full IDL
parser would call during constant folding (spec.md §4.4). It supports the
integer/float/string/boolean literal grammar, the full unary/binary
operator set, and parentheses; it does not implement identifier lookup
(named IDL constants), since that requires the symbol table the full
grammar parser owns and which is outside this module's scope.

Example:
  idlc constexpr '(10 + 20) * 2 - 5'`,
	Args: cobra.ExactArgs(1),
	RunE: runConstExpr,
}

func init() {
	rootCmd.AddCommand(constexprCmd)
}

func runConstExpr(cmd *cobra.Command, args []string) error {
	toks, err := tokenizeAll(args[0])
	if err != nil {
		return err
	}
	p := &exprParser{toks: toks}
	v, err := p.parseExpr(0)
	if err != nil {
		return err
	}
	if !p.atEnd() {
		return fmt.Errorf("idlc constexpr: unexpected trailing input at %q", p.peek().Text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatVariant(v))
	return nil
}

// tokenizeAll scans src to completion, dropping whitespace/comments (the
// lexer already omits them from GetToken's return value; NopCallback just
// discards the advisory notifications).
func tokenizeAll(src string) ([]token.Token, error) {
	l := lexer.New()
	pos := codepos.New(src, "<constexpr>")
	var out []token.Token
	for {
		tok, next, err := l.GetToken(pos, nil, lexer.NopCallback{})
		if err != nil {
			return nil, err
		}
		if tok.IsEmpty() {
			break
		}
		out = append(out, tok)
		pos = next
	}
	return out, nil
}

// exprParser is a small precedence-climbing parser over the operator set
// spec.md §4.4.5 defines, evaluating directly into constvariant.Variant
// rather than building an AST — constant folding has no further use for the
// parse tree once every subexpression is reduced to a literal value.
type exprParser struct {
	toks []token.Token
	pos  int
}

func (p *exprParser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *exprParser) peek() token.Token {
	if p.atEnd() {
		return token.Empty
	}
	return p.toks[p.pos]
}

func (p *exprParser) advance() token.Token {
	t := p.peek()
	p.pos++
	return t
}

// precedence mirrors C's binary operator precedence, lowest to highest;
// spec.md §4.4.5 does not mandate precedence itself (it only defines each
// operator's semantics), so this follows the same C-style precedence the
// lexer's own operator set is drawn from.
func precedence(op string) int {
	switch op {
	case "||":
		return 1
	case "&&":
		return 2
	case "|":
		return 3
	case "^":
		return 4
	case "&":
		return 5
	case "==", "!=":
		return 6
	case "<", "<=", ">", ">=":
		return 7
	case "<<", ">>":
		return 8
	case "+", "-":
		return 9
	case "*", "/", "%":
		return 10
	default:
		return -1
	}
}

func (p *exprParser) parseExpr(minPrec int) (constvariant.Variant, error) {
	left, err := p.parseUnary()
	if err != nil {
		return constvariant.Variant{}, err
	}
	for {
		op := p.peek()
		if op.Type != token.Operator {
			break
		}
		prec := precedence(op.Text)
		if prec < 0 || prec < minPrec {
			break
		}
		p.advance()
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return constvariant.Variant{}, err
		}
		left, err = applyBinary(op.Text, left, right)
		if err != nil {
			return constvariant.Variant{}, err
		}
	}
	return left, nil
}

func applyBinary(op string, a, b constvariant.Variant) (constvariant.Variant, error) {
	switch op {
	case "+":
		return constvariant.Add(a, b)
	case "-":
		return constvariant.Sub(a, b)
	case "*":
		return constvariant.Mul(a, b)
	case "/":
		return constvariant.Div(a, b)
	case "%":
		return constvariant.Mod(a, b)
	case "&":
		return constvariant.And(a, b)
	case "|":
		return constvariant.Or(a, b)
	case "^":
		return constvariant.Xor(a, b)
	case "<<":
		return constvariant.Shl(a, b)
	case ">>":
		return constvariant.Shr(a, b)
	case "&&":
		return constvariant.LogicalAnd(a, b), nil
	case "||":
		return constvariant.LogicalOr(a, b), nil
	case "<":
		return constvariant.Less(a, b)
	case "<=":
		return constvariant.LessEq(a, b)
	case ">":
		return constvariant.Greater(a, b)
	case ">=":
		return constvariant.GreaterEq(a, b)
	case "==":
		return constvariant.Eq(a, b)
	case "!=":
		return constvariant.Neq(a, b)
	default:
		return constvariant.Variant{}, fmt.Errorf("idlc constexpr: unsupported operator %q", op)
	}
}

func (p *exprParser) parseUnary() (constvariant.Variant, error) {
	tok := p.peek()
	if tok.Type == token.Operator && (tok.Text == "-" || tok.Text == "+" || tok.Text == "!" || tok.Text == "~") {
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return constvariant.Variant{}, err
		}
		switch tok.Text {
		case "-":
			return constvariant.Neg(v)
		case "+":
			return constvariant.Pos(v)
		case "!":
			return constvariant.Not(v)
		case "~":
			return constvariant.BitwiseNot(v)
		}
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (constvariant.Variant, error) {
	tok := p.peek()
	switch {
	case tok.Type == token.Separator && tok.Text == "(":
		p.advance()
		v, err := p.parseExpr(0)
		if err != nil {
			return constvariant.Variant{}, err
		}
		closing := p.advance()
		if closing.Text != ")" {
			return constvariant.Variant{}, fmt.Errorf("idlc constexpr: expected ')', got %q", closing.Text)
		}
		return v, nil
	case tok.Type == token.Literal:
		p.advance()
		return literalToVariant(tok)
	default:
		return constvariant.Variant{}, fmt.Errorf("idlc constexpr: unexpected token %q", tok.Text)
	}
}

// literalToVariant converts a scanned Literal token into a Variant, per the
// constructor set spec.md §4.4.1 describes. Identifiers (named constants)
// are not literals and never reach this function.
func literalToVariant(tok token.Token) (constvariant.Variant, error) {
	text := strings.ReplaceAll(tok.Text, "'", "") // drop digit separators
	switch tok.Literal {
	case token.DecimalInteger, token.HexInteger, token.OctalInteger, token.BinaryInteger:
		return parseIntLiteral(text, tok.Literal)
	case token.DecimalFloat, token.HexFloat, token.FixedPoint:
		return parseFloatLiteral(text)
	case token.Boolean:
		return constvariant.NewBool(strings.EqualFold(text, "true")), nil
	case token.String:
		return stringLiteralToVariant(text)
	case token.Character:
		return parseCharLiteral(text)
	default:
		return constvariant.Variant{}, fmt.Errorf("idlc constexpr: %q is not supported in a constant expression", tok.Text)
	}
}

func parseIntLiteral(text string, lt token.LiteralType) (constvariant.Variant, error) {
	unsigned := false
	for {
		n := len(text)
		if n == 0 {
			break
		}
		c := text[n-1]
		if c == 'u' || c == 'U' {
			unsigned = true
			text = text[:n-1]
			continue
		}
		if c == 'l' || c == 'L' {
			text = text[:n-1]
			continue
		}
		break
	}

	base := 10
	switch lt {
	case token.HexInteger:
		base = 16
		text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	case token.OctalInteger:
		base = 8
		text = strings.TrimPrefix(text, "0")
		if text == "" {
			text = "0"
		}
	case token.BinaryInteger:
		base = 2
		text = strings.TrimPrefix(strings.TrimPrefix(text, "0b"), "0B")
	}

	if unsigned {
		n, err := strconv.ParseUint(text, base, 64)
		if err != nil {
			return constvariant.Variant{}, fmt.Errorf("idlc constexpr: invalid integer literal: %w", err)
		}
		return constvariant.NewUint64(n), nil
	}
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return constvariant.Variant{}, fmt.Errorf("idlc constexpr: invalid integer literal: %w", err)
	}
	return constvariant.NewInt64(n), nil
}

func parseFloatLiteral(text string) (constvariant.Variant, error) {
	isFixed := strings.HasSuffix(text, "d") || strings.HasSuffix(text, "D")
	text = strings.TrimRight(text, "fFlLdD")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return constvariant.Variant{}, fmt.Errorf("idlc constexpr: invalid float literal: %w", err)
	}
	if isFixed {
		return constvariant.NewFixed(f), nil
	}
	return constvariant.NewFloat64(f), nil
}

// stringLiteralToVariant picks the string Variant kind matching the
// literal's encoding prefix ("Hello" -> String, u"Hello" -> U16String,
// U"Hello" -> U32String, L"Hello" -> WString, spec.md §3.5) without
// interpreting escape sequences — internal/textinterp owns that, and this
// CLI demo only needs the literal body for display.
func stringLiteralToVariant(text string) (constvariant.Variant, error) {
	body := unquote(text)
	switch {
	case strings.HasPrefix(text, "u8"):
		return constvariant.NewString(body), nil
	case strings.HasPrefix(text, "u"):
		units := make([]uint16, 0, len(body))
		for _, r := range body {
			units = append(units, uint16(r))
		}
		return constvariant.NewU16String(units), nil
	case strings.HasPrefix(text, "U"):
		return constvariant.NewU32String([]rune(body)), nil
	case strings.HasPrefix(text, "L"):
		return constvariant.NewWString([]rune(body)), nil
	default:
		return constvariant.NewString(body), nil
	}
}

func parseCharLiteral(text string) (constvariant.Variant, error) {
	body := unquote(text)
	if body == "" {
		return constvariant.Variant{}, fmt.Errorf("idlc constexpr: empty character literal")
	}
	r := []rune(body)[0]
	return constvariant.NewInt64(int64(r)), nil
}

// unquote strips a leading encoding prefix (u8/u/U/L) and the surrounding
// quote characters from a raw string/char literal token's text. Escape
// sequences are left as-is (internal/textinterp.Decode owns full escape
// interpretation; this CLI demo only needs the literal body for display).
func unquote(text string) string {
	for _, prefix := range []string{"u8", "u", "U", "L"} {
		if strings.HasPrefix(text, prefix) && len(text) > len(prefix) &&
			(text[len(prefix)] == '"' || text[len(prefix)] == '\'') {
			text = text[len(prefix):]
			break
		}
	}
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	return text
}

func formatVariant(v constvariant.Variant) string {
	switch {
	case v.IsBoolean():
		b, _ := v.GetBool()
		return strconv.FormatBool(b)
	case v.IsFloatingPoint():
		f, _ := v.GetFloat64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case v.IsSigned():
		n, _ := v.GetInt64()
		return strconv.FormatInt(n, 10)
	case v.IsUnsigned():
		n, _ := v.GetUint64()
		return strconv.FormatUint(n, 10)
	case v.Kind() == constvariant.String:
		s, _ := v.GetString()
		return strconv.Quote(s)
	case v.Kind() == constvariant.U16String:
		units, _ := v.GetU16String()
		return strconv.Quote(string(utf16ToRunes(units)))
	case v.Kind() == constvariant.U32String:
		runes, _ := v.GetU32String()
		return strconv.Quote(string(runes))
	default: // WString
		runes, _ := v.GetWString()
		return strconv.Quote(string(runes))
	}
}

func utf16ToRunes(units []uint16) []rune {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
			r := (rune(u-0xD800) << 10) + rune(units[i+1]-0xDC00) + 0x10000
			out = append(out, r)
			i++
			continue
		}
		out = append(out, rune(u))
	}
	return out
}
