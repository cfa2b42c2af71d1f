package driver

import (
	"fmt"
	"path/filepath"
	"sort"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/compiler"
	"luajs/transpiler-go/pkg/runtime"
)

// BuildResult lists what a build wrote.
type BuildResult struct {
	Program  *Program
	Output   string
	Files    []string
	Warnings []string
}

// Build runs parse, translate and write for cfg. Files are written only
// after every stage succeeded.
func Build(cfg *Config) (*BuildResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("driver: nil config")
	}
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}
	defer loader.Close()

	program, err := loader.Load(cfg.Resolve(cfg.Entry))
	if err != nil {
		return nil, err
	}

	result, err := compiler.New(cfg.CompilerOptions()).Compile(program.Chunk)
	if err != nil {
		return nil, fmt.Errorf("driver: translate %s: %w", cfg.Entry, err)
	}

	files := make(map[string][]byte, len(result.Files)+2)
	for name, data := range result.Files {
		files[name] = data
	}
	if cfg.AST != "" {
		dump, err := ast.Dump(program.Chunk)
		if err != nil {
			return nil, fmt.Errorf("driver: dump %s: %w", cfg.Entry, err)
		}
		files[cfg.Resolve(cfg.AST)] = dump
	}
	if cfg.Runtime.Emit {
		lib := filepath.Join(filepath.Dir(cfg.Resolve(cfg.Output)), runtime.LibraryFileName)
		files[lib] = runtime.LibrarySource
	}

	if err := compiler.WriteFiles(cfg.Dir, files); err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	written := make([]string, 0, len(files))
	for name := range files {
		written = append(written, name)
	}
	sort.Strings(written)
	return &BuildResult{
		Program:  program,
		Output:   result.Output(),
		Files:    written,
		Warnings: result.Warnings,
	}, nil
}
