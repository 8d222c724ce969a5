package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/anthropic-idl/sdv-idlc/internal/codepos"
	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
	"github.com/anthropic-idl/sdv-idlc/internal/lexer"
	"github.com/anthropic-idl/sdv-idlc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval       string
	lexShowPos    bool
	lexCaseInsens bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an IDL file or inline snippet and print the token stream",
	Long: `lex runs only the lexical front end (internal/lexer) over a source file
or an inline snippet and prints each produced token, its sub-tag and its
captured text. It is a debugging aid for the scanner described in spec.md
§4.3, not part of the compiler's generated-code pipeline.

Examples:
  idlc lex interface.idl
  idlc lex -e 'const long MAX = 0xaBcDUL;'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize an inline snippet instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's start position (line:column)")
	lexCmd.Flags().BoolVar(&lexCaseInsens, "case-insensitive", false, "match keywords case-insensitively")
}

func runLex(cmd *cobra.Command, args []string) error {
	var src, path string
	switch {
	case lexEval != "":
		src, path = lexEval, "<eval>"
	case len(args) == 1:
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("idlc lex: reading %s: %w", path, err)
		}
		src = string(data)
	default:
		return fmt.Errorf("idlc lex: provide a file path or -e")
	}

	l := lexer.New(lexer.WithCaseSensitive(!lexCaseInsens))
	pos := codepos.SkipBOM(codepos.New(src, path))

	out := cmd.OutOrStdout()
	for {
		tok, next, err := l.GetToken(pos, path, lexer.NopCallback{})
		if err != nil {
			if ce, ok := err.(*compileerr.Error); ok {
				ce.WithPath(path)
				ce.WithSource(src)
			}
			return err
		}
		if tok.IsEmpty() {
			fmt.Fprintln(out, "<eof>")
			break
		}
		printToken(out, tok)
		pos = next
	}
	return nil
}

func printToken(out io.Writer, tok token.Token) {
	line := fmt.Sprintf("[%-10s] %q", typeName(tok), tok.Text)
	if lexShowPos {
		line += fmt.Sprintf(" @%d:%d", tok.StartLine, tok.StartCol)
	}
	fmt.Fprintln(out, line)
}

func typeName(tok token.Token) string {
	switch tok.Type {
	case token.Whitespace:
		return "whitespace"
	case token.Comment:
		return "comment"
	case token.Identifier:
		return "identifier"
	case token.Keyword:
		return "keyword"
	case token.Separator:
		return "separator"
	case token.Operator:
		return "operator"
	case token.Literal:
		return "literal:" + literalName(tok.Literal)
	default:
		return "undefined"
	}
}

func literalName(lt token.LiteralType) string {
	switch lt {
	case token.DecimalInteger:
		return "decimal_int"
	case token.HexInteger:
		return "hex_int"
	case token.OctalInteger:
		return "octal_int"
	case token.BinaryInteger:
		return "binary_int"
	case token.DecimalFloat:
		return "decimal_float"
	case token.HexFloat:
		return "hex_float"
	case token.FixedPoint:
		return "fixed"
	case token.Boolean:
		return "bool"
	case token.NullPtr:
		return "nullptr"
	case token.String:
		return "string"
	case token.RawString:
		return "raw_string"
	case token.Character:
		return "char"
	case token.CharacterSequence:
		return "char_sequence"
	default:
		return "?"
	}
}
