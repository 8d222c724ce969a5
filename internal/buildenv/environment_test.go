package buildenv

import "testing"

func TestUnknownOption(t *testing.T) {
	cases := [][]string{
		{"-xyz"},
		{"/xyz"},
		{"--xyz"},
		{"--help", "-xyz"},
		{"--help", "/xyz"},
	}
	for _, args := range cases {
		if _, err := Parse(args); err == nil {
			t.Errorf("Parse(%v): expected error, got nil", args)
		}
	}
}

func TestCommandLineHelp(t *testing.T) {
	cases := [][]string{
		{"--help"},
		{"/?"},
		{"-?"},
		{"--version", "--help"},
	}
	for _, args := range cases {
		env, err := Parse(args)
		if err != nil {
			t.Fatalf("Parse(%v): unexpected error: %v", args, err)
		}
		if !env.Help() {
			t.Errorf("Parse(%v): Help() = false, want true", args)
		}
	}
}

func TestCommandLineVersion(t *testing.T) {
	cases := [][]string{
		{"--version"},
		{"--help", "--version"},
	}
	for _, args := range cases {
		env, err := Parse(args)
		if err != nil {
			t.Fatalf("Parse(%v): unexpected error: %v", args, err)
		}
		if !env.Version() {
			t.Errorf("Parse(%v): Version() = false, want true", args)
		}
	}
}

func TestCommandLineIncludeDirs(t *testing.T) {
	env, err := Parse([]string{"-IHello", "-I../Hoho"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dirs := env.IncludeDirs()
	if len(dirs) != 2 || dirs[0] != "Hello" || dirs[1] != "../Hoho" {
		t.Fatalf("IncludeDirs() = %v", dirs)
	}

	env, err = Parse([]string{"/IHello", `/I..\Hoho`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dirs = env.IncludeDirs()
	if len(dirs) != 2 || dirs[0] != "Hello" || dirs[1] != `..\Hoho` {
		t.Fatalf("IncludeDirs() = %v", dirs)
	}
}

func TestCommandLineOutputDir(t *testing.T) {
	env, err := Parse([]string{"-OHello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.OutputDir() != "Hello" {
		t.Fatalf("OutputDir() = %q, want Hello", env.OutputDir())
	}

	env, err = Parse([]string{"/OHello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.OutputDir() != "Hello" {
		t.Fatalf("OutputDir() = %q, want Hello", env.OutputDir())
	}

	if _, err := Parse([]string{"-OHello", "-OHello2"}); err == nil {
		t.Fatal("expected error for duplicate output dir")
	}
}

func TestCommandLineDefines(t *testing.T) {
	env, err := Parse([]string{"-DTEST"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Defined("TEST") {
		t.Fatal("expected TEST defined")
	}

	env, err = Parse([]string{"/DTEST"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Defined("TEST") {
		t.Fatal("expected TEST defined")
	}

	env, err = Parse([]string{"-DTEST", "-DTEST"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Defined("TEST") {
		t.Fatal("expected TEST defined")
	}

	env, err = Parse([]string{"-DTEST=2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Defined("TEST") {
		t.Fatal("expected TEST defined")
	}

	env, err = Parse([]string{"-DTEST(a,b,c)=a+b+c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Defined("TEST") {
		t.Fatal("expected TEST defined")
	}

	if _, err := Parse([]string{"-DTEST", "-DTEST=2"}); err == nil {
		t.Fatal("expected error for conflicting define")
	}
}

func TestCommandLineResolveConst(t *testing.T) {
	env, err := Parse([]string{"--resolve_const"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.ResolveConst() {
		t.Fatal("expected ResolveConst() true")
	}
}

func TestCommandLineNoPS(t *testing.T) {
	env, err := Parse([]string{"--no_ps"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.NoProxyStub() {
		t.Fatal("expected NoProxyStub() true")
	}
}

func TestCommandLineProxyStubLibName(t *testing.T) {
	env, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := env.ProxyStubLibName(); got != "proxystub" {
		t.Fatalf("ProxyStubLibName() = %q, want proxystub", got)
	}

	env, err = Parse([]string{"--ps_lib_nameExampleString"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := env.ProxyStubLibName(); got != "ExampleString" {
		t.Fatalf("ProxyStubLibName() = %q, want ExampleString", got)
	}
}

func TestCommandLineExtensions(t *testing.T) {
	env := New()
	if !env.InterfaceTypeExtension() {
		t.Fatal("expected InterfaceTypeExtension() true by default")
	}

	cases := []struct {
		toggle string
		get    func(*Environment) bool
	}{
		{"interface_type", (*Environment).InterfaceTypeExtension},
		{"exception_type", (*Environment).ExceptionTypeExtension},
		{"pointer_type", (*Environment).PointerTypeExtension},
		{"unicode_char", (*Environment).UnicodeExtension},
		{"case_sensitive", (*Environment).CaseSensitiveTypeExtension},
		{"context_names", (*Environment).ContextDependentNamesExtension},
		{"multi_dimensional_array", (*Environment).MultiDimArrayExtension},
	}
	for _, c := range cases {
		env, err := Parse([]string{"--" + c.toggle + "-"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.get(env) {
			t.Errorf("%s-: expected false", c.toggle)
		}

		env, err = Parse([]string{"--" + c.toggle + "+"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.get(env) {
			t.Errorf("%s+: expected true", c.toggle)
		}
	}
}

func TestCommandLineStrict(t *testing.T) {
	env := New()
	if !env.InterfaceTypeExtension() || !env.ExceptionTypeExtension() || !env.UnicodeExtension() ||
		!env.CaseSensitiveTypeExtension() || !env.ContextDependentNamesExtension() || !env.MultiDimArrayExtension() {
		t.Fatal("expected all extensions enabled by default")
	}

	env, err := Parse([]string{"--strict"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.InterfaceTypeExtension() || env.ExceptionTypeExtension() || env.UnicodeExtension() ||
		env.CaseSensitiveTypeExtension() || env.ContextDependentNamesExtension() || env.MultiDimArrayExtension() {
		t.Fatal("expected all extensions disabled after --strict")
	}
}

func TestCommandLineDefaultArg(t *testing.T) {
	env, err := Parse([]string{"test1.idl", "test2.idl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := env.NextFile(); got != "test1.idl" {
		t.Fatalf("NextFile() = %q, want test1.idl", got)
	}
	if got := env.NextFile(); got != "test2.idl" {
		t.Fatalf("NextFile() = %q, want test2.idl", got)
	}
	if got := env.NextFile(); got != "" {
		t.Fatalf("NextFile() = %q, want empty", got)
	}
}
