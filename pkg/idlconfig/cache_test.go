package idlconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestLoadCache_MissingFileYieldsEmpty(t *testing.T) {
	c, err := LoadCache(filepath.Join(t.TempDir(), "idlc.json"))
	if err != nil {
		t.Fatalf("LoadCache on a missing file must not error: %v", err)
	}
	if len(c.IncludeDirs()) != 0 {
		t.Errorf("IncludeDirs() on an empty cache = %v, want none", c.IncludeDirs())
	}
	if _, ok := c.Define("DEBUG"); ok {
		t.Errorf("Define() on an empty cache must report not-found")
	}
}

func TestCache_SetAndReadBack(t *testing.T) {
	c, err := LoadCache(filepath.Join(t.TempDir(), "idlc.json"))
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if err := c.SetIncludeDirs([]string{"./idl", "./vendor/idl"}); err != nil {
		t.Fatalf("SetIncludeDirs: %v", err)
	}
	if err := c.SetDefine("DEBUG", "1"); err != nil {
		t.Fatalf("SetDefine: %v", err)
	}
	if err := c.SetOutputDir("./gen"); err != nil {
		t.Fatalf("SetOutputDir: %v", err)
	}

	if got := c.IncludeDirs(); len(got) != 2 || got[0] != "./idl" || got[1] != "./vendor/idl" {
		t.Errorf("IncludeDirs() = %v", got)
	}
	if v, ok := c.Define("DEBUG"); !ok || v != "1" {
		t.Errorf("Define(DEBUG) = (%q, %v), want (1, true)", v, ok)
	}
	if c.OutputDir() != "./gen" {
		t.Errorf("OutputDir() = %q, want %q", c.OutputDir(), "./gen")
	}
}

func TestCache_SetDefine_LeavesOthersUntouched(t *testing.T) {
	c, _ := LoadCache(filepath.Join(t.TempDir(), "idlc.json"))
	_ = c.SetDefine("A", "1")
	_ = c.SetDefine("B", "2")
	if v, ok := c.Define("A"); !ok || v != "1" {
		t.Errorf("Define(A) after setting B = (%q, %v), want (1, true)", v, ok)
	}
}

func TestCache_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idlc.json")
	c, err := LoadCache(path)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	_ = c.SetOutputDir("./gen")
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := LoadCache(path)
	if err != nil {
		t.Fatalf("LoadCache after Save: %v", err)
	}
	if reloaded.OutputDir() != "./gen" {
		t.Errorf("reloaded OutputDir() = %q, want %q", reloaded.OutputDir(), "./gen")
	}
}

func TestLoadCache_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idlc.json")
	writeFile(t, path, "{not json")
	if _, err := LoadCache(path); err == nil {
		t.Fatalf("expected an error loading malformed JSON")
	}
}
