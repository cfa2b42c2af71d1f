package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"luajs/transpiler-go/pkg/compiler"
)

const (
	DefaultConfigName = "luajs.yml"
	DefaultEntry      = "hello-world.lua"
	DefaultOutput     = compiler.DefaultOutputName
	DefaultAST        = "out.ast.json"
)

// Config describes one build. Relative paths are resolved against Dir.
type Config struct {
	Path    string
	Dir     string
	Entry   string
	Output  string
	AST     string
	Format  compiler.Format
	Indent  string
	Runtime RuntimeConfig
}

type RuntimeConfig struct {
	Module string
	// Emit also writes the bundled runtime library next to Output.
	Emit bool
}

// DefaultConfig returns the fixed pipeline rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Dir:    dir,
		Entry:  DefaultEntry,
		Output: DefaultOutput,
		AST:    DefaultAST,
		Format: compiler.FormatModule,
		Indent: compiler.DefaultIndent,
		Runtime: RuntimeConfig{
			Module: compiler.DefaultRuntimeModule,
		},
	}
}

type configDisk struct {
	Entry   string             `yaml:"entry"`
	Output  string             `yaml:"output"`
	AST     string             `yaml:"ast"`
	Format  string             `yaml:"format"`
	Indent  *string            `yaml:"indent"`
	Runtime *configRuntimeDisk `yaml:"runtime"`
}

type configRuntimeDisk struct {
	Module string `yaml:"module"`
	Emit   bool   `yaml:"emit"`
}

// LoadConfig reads a luajs.yml file. A missing file yields the defaults
// rooted at the file's directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("driver: resolve %s: %w", path, err)
	}
	cfg := DefaultConfig(filepath.Dir(abs))

	file, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("driver: open %s: %w", abs, err)
	}
	defer file.Close()

	var disk configDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&disk); err != nil {
		if errors.Is(err, io.EOF) {
			cfg.Path = abs
			return cfg, nil
		}
		return nil, fmt.Errorf("driver: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	if err := disk.apply(cfg); err != nil {
		return nil, fmt.Errorf("driver: %s: %w", abs, err)
	}
	return cfg, nil
}

func (d configDisk) apply(cfg *Config) error {
	if v := strings.TrimSpace(d.Entry); v != "" {
		cfg.Entry = v
	}
	if v := strings.TrimSpace(d.Output); v != "" {
		cfg.Output = v
	}
	if v := strings.TrimSpace(d.AST); v != "" {
		cfg.AST = v
	}
	if v := strings.TrimSpace(d.Format); v != "" {
		format := compiler.Format(v)
		if format != compiler.FormatModule && format != compiler.FormatScript {
			return fmt.Errorf("unknown format %q (want %q or %q)", v, compiler.FormatModule, compiler.FormatScript)
		}
		cfg.Format = format
	}
	if d.Indent != nil {
		if strings.Trim(*d.Indent, " \t") != "" {
			return fmt.Errorf("indent must contain only spaces or tabs")
		}
		if *d.Indent != "" {
			cfg.Indent = *d.Indent
		}
	}
	if d.Runtime != nil {
		if v := strings.TrimSpace(d.Runtime.Module); v != "" {
			cfg.Runtime.Module = v
		}
		cfg.Runtime.Emit = d.Runtime.Emit
	}
	return nil
}

// Resolve joins a configured path with the config directory.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// CompilerOptions maps the build configuration onto the translator.
func (c *Config) CompilerOptions() compiler.Options {
	return compiler.Options{
		Format:        c.Format,
		RuntimeModule: c.Runtime.Module,
		Indent:        c.Indent,
		OutputName:    c.Resolve(c.Output),
	}
}
