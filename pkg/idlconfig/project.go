// Package idlconfig loads the project-level configuration files that sit
// above the command line: an idlc.yaml project file declaring the include
// dirs, defines, and output settings a project builds with, and an
// idlc.json cache of the last resolved option set for incremental builds.
// There is no original_source/ counterpart — the source takes every
// setting from argv alone — so this package is grounded on the teacher's
// own configuration idiom (cmd/dwscript/cmd's cobra/pflag layer) generalized
// to a project file the CLI can preload before flag parsing, per the
// compiler's supplemented ambient stack.
package idlconfig

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Project is the idlc.yaml project file shape: the same settings
// buildenv.Environment resolves from the command line, so a project file
// can seed defaults a developer would otherwise have to repeat on every
// invocation.
type Project struct {
	IncludeDirs  []string          `yaml:"include_dirs"`
	Defines      map[string]string `yaml:"defines"`
	OutputDir    string            `yaml:"output_dir"`
	PSLibName    string            `yaml:"ps_lib_name"`
	NoProxyStub  bool              `yaml:"no_proxy_stub"`
	ResolveConst bool              `yaml:"resolve_const"`
	Extensions   map[string]bool   `yaml:"extensions"`
}

// LoadProject reads and parses an idlc.yaml file at path.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("idlconfig: reading %s: %w", path, err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("idlconfig: parsing %s: %w", path, err)
	}
	return &p, nil
}

// Args renders p as a sequence of buildenv-compatible command-line tokens
// (e.g. "-Idir", "-DNAME=value", "--ps_lib_nameFoo"), in field order, so
// the CLI layer can preload a project file by handing Args() to
// buildenv.Parse ahead of the real argv. Note that buildenv.Parse treats a
// second -O or a differently-valued -D of the same name as an error rather
// than letting the later one win, so the CLI must omit a project setting
// from this slice (or drop the corresponding real flag) whenever the two
// would conflict, rather than concatenating both unconditionally.
func (p *Project) Args() []string {
	var args []string
	for _, dir := range p.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for name, value := range p.Defines {
		if value == "" {
			args = append(args, "-D"+name)
		} else {
			args = append(args, "-D"+name+"="+value)
		}
	}
	if p.OutputDir != "" {
		args = append(args, "-O"+p.OutputDir)
	}
	if p.PSLibName != "" {
		args = append(args, "--ps_lib_name"+p.PSLibName)
	}
	if p.NoProxyStub {
		args = append(args, "--no_ps")
	}
	if p.ResolveConst {
		args = append(args, "--resolve_const")
	}
	for name, enabled := range p.Extensions {
		sign := "-"
		if enabled {
			sign = "+"
		}
		args = append(args, "--"+name+sign)
	}
	return args
}
