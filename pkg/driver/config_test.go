package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"luajs/transpiler-go/pkg/compiler"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, DefaultConfigName))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("Path = %q, want empty for a missing file", cfg.Path)
	}
	if cfg.Dir != dir {
		t.Fatalf("Dir = %q, want %q", cfg.Dir, dir)
	}
	if cfg.Entry != "hello-world.lua" || cfg.Output != "out.js" || cfg.AST != "out.ast.json" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Format != compiler.FormatModule {
		t.Fatalf("Format = %q, want %q", cfg.Format, compiler.FormatModule)
	}
	if cfg.Runtime.Module != "./lualib.js" || cfg.Runtime.Emit {
		t.Fatalf("unexpected runtime defaults: %#v", cfg.Runtime)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
entry: src/main.lua
output: build/main.js
ast: ""
format: script
indent: "    "
runtime:
  module: ./vendor/lualib.js
  emit: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got, want := cfg.Entry, "src/main.lua"; got != want {
		t.Fatalf("Entry = %q, want %q", got, want)
	}
	if got, want := cfg.Resolve(cfg.Output), filepath.Join(filepath.Dir(path), "build", "main.js"); got != want {
		t.Fatalf("Resolve(Output) = %q, want %q", got, want)
	}
	if got, want := cfg.AST, DefaultAST; got != want {
		t.Fatalf("AST = %q, want %q (empty keeps default)", got, want)
	}
	opts := cfg.CompilerOptions()
	if opts.Format != compiler.FormatScript {
		t.Fatalf("Format = %q, want script", opts.Format)
	}
	if opts.Indent != "    " {
		t.Fatalf("Indent = %q, want four spaces", opts.Indent)
	}
	if opts.RuntimeModule != "./vendor/lualib.js" {
		t.Fatalf("RuntimeModule = %q", opts.RuntimeModule)
	}
	if !cfg.Runtime.Emit {
		t.Fatalf("expected runtime.emit to be true")
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Path != path || cfg.Entry != DefaultEntry {
		t.Fatalf("unexpected config for empty file: %#v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown field", content: "entyr: main.lua\n", want: "field entyr not found"},
		{name: "bad format", content: "format: commonjs\n", want: `unknown format "commonjs"`},
		{name: "bad indent", content: "indent: \"--\"\n", want: "indent must contain only spaces or tabs"},
		{name: "malformed", content: "entry: [\n", want: "driver: parse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want substring %q", err.Error(), tc.want)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigName)
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
