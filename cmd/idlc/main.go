// Command idlc is the IDL compiler's command-line entry point: it parses
// the build-time option grammar (internal/buildenv), drives the lexer over
// each source file, and hands off to the cobra subcommand tree for the
// auxiliary debugging commands (lex, constexpr, version).
package main

import (
	"fmt"
	"os"

	"github.com/anthropic-idl/sdv-idlc/cmd/idlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
