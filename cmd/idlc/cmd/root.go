// Package cmd implements idlc's cobra command tree: root, version, compile,
// lex, and constexpr, grounded on the teacher's cmd/dwscript/cmd layout
// (one file per subcommand, package-level vars for shared flags, rootCmd
// owning persistent flags) and wired to this module's own front-end
// packages instead of the teacher's interpreter.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, overridable by build flags (-ldflags
	// "-X ...=...") the same way the teacher's cmd/dwscript/cmd/root.go sets
	// Version/GitCommit/BuildDate.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "idlc [flags] file...",
	Short: "SDV IDL compiler",
	Long: `idlc compiles an OMG-IDL-flavored interface definition into generated
proxy/stub sources for the SDV remote procedure system.

The core recognizes the CLI option grammar described in spec.md §6.1
(-I/-O/-D, --resolve_const, --no_ps, --ps_lib_name, the extension toggles,
and --strict) via internal/buildenv. The full IDL grammar parser and the
generated-source templates are outside this module's scope; "compile" only
exercises the lexical front end end to end.`,
	Version:            Version,
	SilenceUsage:       true,
	DisableFlagParsing: true, // spec.md §6.1's option grammar is buildenv's, not pflag's
	RunE:               runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
