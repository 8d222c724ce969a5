// Package buildenv parses the compiler's command line into a resolved
// Environment, grounded on original_source's CIdlCompilerEnvironment
// (exercised end to end by tests/unit_tests/idl_compiler/commandline_test.cpp,
// which this package's test file mirrors case by case) via the source's
// global/cmdlnparser/cmdlnparser.cpp option-prefix scanning style.
package buildenv

import (
	"strings"

	"github.com/anthropic-idl/sdv-idlc/internal/compileerr"
)

// extension names recognized by the --name+/--name- toggles and by --strict,
// in the order commandline_test.cpp exercises them.
const (
	extInterfaceType   = "interface_type"
	extExceptionType   = "exception_type"
	extPointerType     = "pointer_type"
	extUnicodeChar     = "unicode_char"
	extCaseSensitive   = "case_sensitive"
	extContextNames    = "context_names"
	extMultiDimArray   = "multi_dimensional_array"
	defaultPSLibTarget = "proxystub"
)

// Environment is the resolved command line: include directories, output
// directory, macro defines, the extension-toggle set, and the positional
// IDL source file queue, exactly as spec.md §6.1 enumerates them.
type Environment struct {
	includeDirs []string
	outputDir   string
	defines     map[string]string

	help         bool
	version      bool
	resolveConst bool
	noProxyStub  bool
	psLibName    string

	extensions map[string]bool

	files    []string
	fileNext int
}

// New returns an Environment with every extension toggle defaulted to
// enabled and the proxy/stub CMake target defaulted to "proxystub", the
// same defaults CIdlCompilerEnvironment's zero-argument constructor reports.
func New() *Environment {
	return &Environment{
		defines:   map[string]string{},
		psLibName: defaultPSLibTarget,
		extensions: map[string]bool{
			extInterfaceType: true,
			extExceptionType: true,
			extPointerType:   true,
			extUnicodeChar:   true,
			extCaseSensitive: true,
			extContextNames:  true,
			extMultiDimArray: true,
		},
	}
}

// Parse parses args (program-name-excluded, the idiomatic Go convention —
// unlike the source's vector which keeps argv[0]) into a new Environment,
// returning a *compileerr.Error of Kind CLI on the first unknown option,
// duplicate output directory, or conflicting define.
func Parse(args []string) (*Environment, error) {
	env := New()
	for _, arg := range args {
		if err := env.apply(arg); err != nil {
			return env, err
		}
	}
	return env, nil
}

func cliErr(arg, reason string) *compileerr.Error {
	return compileerr.New(compileerr.CLI, 0, 0, arg, reason)
}

func (e *Environment) apply(arg string) error {
	switch {
	case hasOptPrefix(arg, "I"):
		e.includeDirs = append(e.includeDirs, optValue(arg, "I"))
		return nil

	case hasOptPrefix(arg, "O"):
		dir := optValue(arg, "O")
		if e.outputDir != "" {
			return cliErr(arg, "output directory specified more than once")
		}
		e.outputDir = dir
		return nil

	case hasOptPrefix(arg, "D"):
		return e.applyDefine(arg, optValue(arg, "D"))

	case arg == "--help" || arg == "-?" || arg == "/?":
		e.help = true
		return nil

	case arg == "--version":
		e.version = true
		return nil

	case arg == "--resolve_const":
		e.resolveConst = true
		return nil

	case arg == "--no_ps":
		e.noProxyStub = true
		return nil

	case strings.HasPrefix(arg, "--ps_lib_name") && len(arg) > len("--ps_lib_name"):
		e.psLibName = arg[len("--ps_lib_name"):]
		return nil

	case arg == "--strict":
		for name := range e.extensions {
			e.extensions[name] = false
		}
		return nil

	default:
		if name, enable, ok := extensionToggle(arg); ok {
			e.extensions[name] = enable
			return nil
		}
		if isOptionLike(arg) {
			return cliErr(arg, "unknown option")
		}
		e.files = append(e.files, arg)
		return nil
	}
}

// applyDefine resolves -D<name>[=value]/-D<name>(...)=value against any
// prior define of the same name: an identical repeat is a no-op (spec.md
// §6.1: "repeated identical defines allowed"), a differing redefinition is
// a CLI error ("conflicting defines are an error").
func (e *Environment) applyDefine(arg, spec string) error {
	name := defineName(spec)
	if prior, ok := e.defines[name]; ok && prior != spec {
		return cliErr(arg, "conflicting macro redefinition: "+name)
	}
	e.defines[name] = spec
	return nil
}

// defineName extracts the macro name from a -D payload, stopping at the
// first '=' or '(' (function-like macro parameter list).
func defineName(spec string) string {
	if i := strings.IndexAny(spec, "=("); i >= 0 {
		return spec[:i]
	}
	return spec
}

// hasOptPrefix reports whether arg is prefix-style option opt (e.g. "-I" or
// "/I") with at least one character following it ("-Ifoo", not bare "-I").
func hasOptPrefix(arg, opt string) bool {
	for _, lead := range [...]string{"-", "/"} {
		p := lead + opt
		if strings.HasPrefix(arg, p) && len(arg) > len(p) {
			return true
		}
	}
	return false
}

func optValue(arg, opt string) string {
	for _, lead := range [...]string{"-", "/"} {
		p := lead + opt
		if strings.HasPrefix(arg, p) {
			return arg[len(p):]
		}
	}
	return ""
}

// extensionToggle recognizes "--<name>+" / "--<name>-" for the seven
// extension names spec.md §6.1 lists.
func extensionToggle(arg string) (name string, enable bool, ok bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", false, false
	}
	body := arg[2:]
	if len(body) == 0 {
		return "", false, false
	}
	suffix := body[len(body)-1]
	if suffix != '+' && suffix != '-' {
		return "", false, false
	}
	candidate := body[:len(body)-1]
	switch candidate {
	case extInterfaceType, extExceptionType, extPointerType, extUnicodeChar,
		extCaseSensitive, extContextNames, extMultiDimArray:
		return candidate, suffix == '+', true
	default:
		return "", false, false
	}
}

func isOptionLike(arg string) bool {
	return strings.HasPrefix(arg, "--") || strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "/")
}

// IncludeDirs returns the -I/-I directories in command-line order.
func (e *Environment) IncludeDirs() []string { return append([]string(nil), e.includeDirs...) }

// OutputDir returns the -O/-O directory, or "" if none was given.
func (e *Environment) OutputDir() string { return e.outputDir }

// Defined reports whether name was given via -D/-D, with or without a value.
func (e *Environment) Defined(name string) bool {
	_, ok := e.defines[name]
	return ok
}

// Help reports whether --help, -?, or /? was given.
func (e *Environment) Help() bool { return e.help }

// Version reports whether --version was given.
func (e *Environment) Version() bool { return e.version }

// ResolveConst reports whether --resolve_const was given.
func (e *Environment) ResolveConst() bool { return e.resolveConst }

// NoProxyStub reports whether --no_ps was given.
func (e *Environment) NoProxyStub() bool { return e.noProxyStub }

// ProxyStubLibName returns the --ps_lib_name override, or "proxystub".
func (e *Environment) ProxyStubLibName() string { return e.psLibName }

func (e *Environment) InterfaceTypeExtension() bool { return e.extensions[extInterfaceType] }
func (e *Environment) ExceptionTypeExtension() bool { return e.extensions[extExceptionType] }
func (e *Environment) PointerTypeExtension() bool   { return e.extensions[extPointerType] }
func (e *Environment) UnicodeExtension() bool       { return e.extensions[extUnicodeChar] }
func (e *Environment) CaseSensitiveTypeExtension() bool {
	return e.extensions[extCaseSensitive]
}
func (e *Environment) ContextDependentNamesExtension() bool {
	return e.extensions[extContextNames]
}
func (e *Environment) MultiDimArrayExtension() bool { return e.extensions[extMultiDimArray] }

// Files returns the positional IDL source file arguments, in order.
func (e *Environment) Files() []string { return append([]string(nil), e.files...) }

// NextFile pops the next positional source file off the queue, returning ""
// once exhausted — the same "GetNextFile" consume-one-at-a-time contract
// commandline_test.cpp's CommandLineDefaultArg test relies on.
func (e *Environment) NextFile() string {
	if e.fileNext >= len(e.files) {
		return ""
	}
	f := e.files[e.fileNext]
	e.fileNext++
	return f
}
