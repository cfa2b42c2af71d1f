package compiler

import (
	"fmt"

	"luajs/transpiler-go/pkg/ast"
)

// Format selects the preamble placed in front of the translated program.
type Format string

const (
	// FormatModule imports the runtime library as an ES module.
	FormatModule Format = "module"
	// FormatScript assumes LuaContext is already in scope.
	FormatScript Format = "script"
)

const (
	DefaultRuntimeModule = "./lualib.js"
	DefaultOutputName    = "out.js"
	DefaultIndent        = "  "
)

type Options struct {
	Format        Format
	RuntimeModule string
	Indent        string
	// OutputName is the key of the translated program in Result.Files.
	OutputName string
}

type Result struct {
	Files    map[string][]byte
	Warnings []string

	output string
}

type Compiler struct {
	opts Options
}

func New(opts Options) *Compiler {
	return &Compiler{opts: withDefaults(opts)}
}

func withDefaults(opts Options) Options {
	if opts.Format == "" {
		opts.Format = FormatModule
	}
	if opts.RuntimeModule == "" {
		opts.RuntimeModule = DefaultRuntimeModule
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	if opts.OutputName == "" {
		opts.OutputName = DefaultOutputName
	}
	return opts
}

// Options reports the effective options after defaults were applied.
func (c *Compiler) Options() Options {
	return c.opts
}

// Compile translates one chunk. Each call uses a fresh generator, so a
// Compiler may be shared between goroutines.
func (c *Compiler) Compile(chunk *ast.Chunk) (*Result, error) {
	if chunk == nil {
		return nil, fmt.Errorf("compiler: missing chunk")
	}
	if err := validateFormat(c.opts.Format); err != nil {
		return nil, err
	}
	gen := newGenerator(c.opts)
	body, err := gen.translateChunk(chunk)
	if err != nil {
		return nil, err
	}
	output := gen.render(body)
	return &Result{
		Files:    map[string][]byte{c.opts.OutputName: []byte(output)},
		Warnings: gen.warnings,
		output:   output,
	}, nil
}

// Output returns the translated program text.
func (r *Result) Output() string {
	if r == nil {
		return ""
	}
	return r.output
}

func (r *Result) Write(dir string) error {
	if r == nil {
		return fmt.Errorf("compiler: nil result")
	}
	return WriteFiles(dir, r.Files)
}

func validateFormat(format Format) error {
	switch format {
	case FormatModule, FormatScript:
		return nil
	default:
		return fmt.Errorf("compiler: unknown output format %q", format)
	}
}
