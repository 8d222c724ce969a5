package idlconfig

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Cache is the idlc.json resolved-options cache: the include dirs, defines,
// and output dir an incremental build last resolved to, so a subsequent
// invocation that repeats the same -D/-I flags can be recognized as a no-op
// rather than re-triggering full regeneration. It is read with gjson and
// patched in place with sjson, keeping the whole document as raw JSON text
// rather than round-tripping through a Go struct — the natural home for
// those two teacher indirect dependencies, promoted to direct per
// SPEC_FULL.md §1.3.
type Cache struct {
	path string
	raw  string // the full JSON document, "" if nothing has been loaded yet
}

// LoadCache reads the cache at path. A missing file is not an error: it
// yields an empty Cache ready to be populated and saved for the first time.
func LoadCache(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Cache{path: path, raw: "{}"}, nil
		}
		return nil, fmt.Errorf("idlconfig: reading cache %s: %w", path, err)
	}
	if !gjson.Valid(string(data)) {
		return nil, fmt.Errorf("idlconfig: cache %s is not valid JSON", path)
	}
	return &Cache{path: path, raw: string(data)}, nil
}

// IncludeDirs returns the include directories recorded in the cache, in
// resolution order.
func (c *Cache) IncludeDirs() []string {
	return stringArray(gjson.Get(c.raw, "include_dirs"))
}

// Define returns the raw -D payload cached for name ("" if name is unknown
// or was defined with no value) and whether name was recorded at all.
func (c *Cache) Define(name string) (string, bool) {
	r := gjson.Get(c.raw, "defines."+gjson.Escape(name))
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}

// OutputDir returns the cached output directory, or "" if none was recorded.
func (c *Cache) OutputDir() string {
	return gjson.Get(c.raw, "output_dir").String()
}

// SetIncludeDirs replaces the cached include-dir list.
func (c *Cache) SetIncludeDirs(dirs []string) error {
	raw, err := sjson.Set(c.raw, "include_dirs", dirs)
	if err != nil {
		return fmt.Errorf("idlconfig: setting include_dirs: %w", err)
	}
	c.raw = raw
	return nil
}

// SetDefine patches in a single -D<name>[=value] entry, leaving every other
// cached value untouched — the use case an incremental build repeating most
// of its flags unchanged needs, versus rewriting the whole document.
func (c *Cache) SetDefine(name, value string) error {
	raw, err := sjson.Set(c.raw, "defines."+gjson.Escape(name), value)
	if err != nil {
		return fmt.Errorf("idlconfig: setting define %s: %w", name, err)
	}
	c.raw = raw
	return nil
}

// SetOutputDir patches the cached output directory.
func (c *Cache) SetOutputDir(dir string) error {
	raw, err := sjson.Set(c.raw, "output_dir", dir)
	if err != nil {
		return fmt.Errorf("idlconfig: setting output_dir: %w", err)
	}
	c.raw = raw
	return nil
}

// Save writes the cache back to its path.
func (c *Cache) Save() error {
	if err := os.WriteFile(c.path, []byte(c.raw), 0o644); err != nil {
		return fmt.Errorf("idlconfig: writing cache %s: %w", c.path, err)
	}
	return nil
}

// Raw returns the cache's current JSON document, chiefly for tests.
func (c *Cache) Raw() string { return c.raw }

func stringArray(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	arr := r.Array()
	out := make([]string, len(arr))
	for i, v := range arr {
		out[i] = v.String()
	}
	return out
}
