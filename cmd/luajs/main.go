package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docopt/docopt-go"
)

const cliToolVersion = "luajs 0.1.0-dev"

const usage = `luajs translates a subset of Lua into JavaScript.

Usage:
  luajs [--config=<path>]
  luajs translate [--format=<fmt>] [-o <out>] [--ast=<path>] <file>
  luajs run <file>
  luajs repl
  luajs -h | --help
  luajs --version

Options:
  --config=<path>  Project file [default: luajs.yml].
  --format=<fmt>   Output format, module or script [default: module].
  -o <out>         Write the program to <out> instead of stdout.
  --ast=<path>     Also write the syntax tree as JSON.
  -h, --help       Display this help.
  --version        Print luajs version.

Without a command luajs reads the project file (or its defaults), translates
the entry file and writes the program and its syntax tree next to it.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		helpText string
		helpErr  error
	)
	parser := &docopt.Parser{
		HelpHandler: func(err error, text string) {
			helpErr = err
			helpText = text
		},
	}
	opts, err := parser.ParseArgs(usage, args, cliToolVersion)
	switch {
	case helpErr != nil:
		fmt.Fprintln(stderr, helpText)
		return 2
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 2
	case helpText != "":
		fmt.Fprintln(stdout, helpText)
		return 0
	}

	cmd := command{stdin: stdin, stdout: stdout, stderr: stderr}
	if ok, _ := opts.Bool("translate"); ok {
		return cmd.translate(opts)
	}
	if ok, _ := opts.Bool("run"); ok {
		file, _ := opts.String("<file>")
		return cmd.runFile(file)
	}
	if ok, _ := opts.Bool("repl"); ok {
		return cmd.repl()
	}
	config, _ := opts.String("--config")
	return cmd.build(config)
}

type command struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (c command) fail(err error) int {
	fmt.Fprintln(c.stderr, err)
	return 1
}

func (c command) warn(warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintln(c.stderr, "warning:", warning)
	}
}
