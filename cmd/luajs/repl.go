package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"luajs/transpiler-go/pkg/compiler"
	"luajs/transpiler-go/pkg/driver"
	"luajs/transpiler-go/pkg/interpreter"
)

const (
	promptFirst = "> "
	promptMore  = ">> "
)

type lineReader interface {
	Prompt(prompt string) (string, error)
	Close() error
}

type terminalReader struct {
	*liner.State
}

func newTerminalReader() *terminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminalReader{state}
}

func (r *terminalReader) Prompt(prompt string) (string, error) {
	line, err := r.State.Prompt(prompt)
	if err == nil && strings.TrimSpace(line) != "" {
		r.AppendHistory(line)
	}
	return line, err
}

// scanReader reads piped input without echoing prompts.
type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) Prompt(string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scanReader) Close() error { return nil }

func (c command) openReader() lineReader {
	if f, ok := c.stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newTerminalReader()
	}
	return &scanReader{scanner: bufio.NewScanner(c.stdin)}
}

// repl keeps one chunk scope and one VM across inputs. An input that does
// not parse is extended with the following lines until it parses or an
// empty line is entered.
func (c command) repl() int {
	loader, err := driver.NewLoader()
	if err != nil {
		return c.fail(err)
	}
	defer loader.Close()

	session, err := compiler.NewSession(compiler.Options{Format: compiler.FormatScript})
	if err != nil {
		return c.fail(err)
	}
	interp := interpreter.New(interpreter.Options{Stdout: c.stdout})
	ctx := context.Background()
	if err := interp.Run(ctx, "<preamble>", session.Preamble()); err != nil {
		return c.fail(err)
	}

	reader := c.openReader()
	defer reader.Close()

	var pending []string
	for {
		prompt := promptFirst
		if len(pending) > 0 {
			prompt = promptMore
		}
		line, err := reader.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(pending) > 0 {
					if _, parseErr := loader.LoadSource([]byte(strings.Join(pending, "\n"))); parseErr != nil {
						return c.fail(parseErr)
					}
				}
				return 0
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				pending = nil
				continue
			}
			return c.fail(err)
		}
		if len(pending) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		flush := len(pending) > 0 && strings.TrimSpace(line) == ""
		if !flush {
			pending = append(pending, line)
		}
		source := strings.Join(pending, "\n")

		chunk, err := loader.LoadSource([]byte(source))
		if err != nil {
			if !flush {
				continue
			}
			pending = nil
			fmt.Fprintln(c.stderr, err)
			continue
		}
		pending = nil

		code, warnings, err := session.Translate(chunk)
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			continue
		}
		c.warn(warnings)
		if code == "" {
			continue
		}
		if err := interp.Run(ctx, "<stdin>", code); err != nil {
			fmt.Fprintln(c.stderr, err)
		}
	}
}
