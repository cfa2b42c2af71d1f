package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"luajs/transpiler-go/pkg/compiler"
	"luajs/transpiler-go/pkg/driver"
	"luajs/transpiler-go/pkg/interpreter"
)

// runFile translates file as a script and executes it in-process.
func (c command) runFile(file string) int {
	loader, err := driver.NewLoader()
	if err != nil {
		return c.fail(err)
	}
	defer loader.Close()
	program, err := loader.Load(file)
	if err != nil {
		return c.fail(err)
	}
	result, err := compiler.New(compiler.Options{Format: compiler.FormatScript}).Compile(program.Chunk)
	if err != nil {
		return c.fail(fmt.Errorf("%s: %w", file, err))
	}
	c.warn(result.Warnings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	interp := interpreter.New(interpreter.Options{Stdout: c.stdout})
	if err := interp.Run(ctx, program.Path, result.Output()); err != nil {
		return c.fail(err)
	}
	return 0
}
