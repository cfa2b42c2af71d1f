package main

import (
	"fmt"
	"path/filepath"

	"github.com/docopt/docopt-go"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/compiler"
	"luajs/transpiler-go/pkg/driver"
)

func (c command) build(configPath string) int {
	cfg, err := driver.LoadConfig(configPath)
	if err != nil {
		return c.fail(err)
	}
	res, err := driver.Build(cfg)
	if err != nil {
		return c.fail(err)
	}
	c.warn(res.Warnings)
	for _, name := range res.Files {
		if rel, relErr := filepath.Rel(cfg.Dir, name); relErr == nil {
			name = rel
		}
		fmt.Fprintln(c.stdout, "wrote", name)
	}
	return 0
}

func (c command) translate(opts docopt.Opts) int {
	file, _ := opts.String("<file>")
	format, _ := opts.String("--format")
	out, _ := opts.String("-o")
	astPath, _ := opts.String("--ast")

	loader, err := driver.NewLoader()
	if err != nil {
		return c.fail(err)
	}
	defer loader.Close()
	program, err := loader.Load(file)
	if err != nil {
		return c.fail(err)
	}

	compileOpts := compiler.Options{Format: compiler.Format(format)}
	if out != "" {
		abs, err := filepath.Abs(out)
		if err != nil {
			return c.fail(err)
		}
		compileOpts.OutputName = abs
	}
	result, err := compiler.New(compileOpts).Compile(program.Chunk)
	if err != nil {
		return c.fail(fmt.Errorf("%s: %w", file, err))
	}
	c.warn(result.Warnings)

	files := map[string][]byte{}
	if out != "" {
		files = result.Files
	}
	if astPath != "" {
		dump, err := ast.Dump(program.Chunk)
		if err != nil {
			return c.fail(err)
		}
		abs, err := filepath.Abs(astPath)
		if err != nil {
			return c.fail(err)
		}
		files[abs] = dump
	}
	if len(files) > 0 {
		if err := compiler.WriteFiles(filepath.Dir(program.Path), files); err != nil {
			return c.fail(err)
		}
	}
	if out == "" {
		fmt.Fprint(c.stdout, result.Output())
	}
	return 0
}
