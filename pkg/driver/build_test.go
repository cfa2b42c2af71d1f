package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"luajs/transpiler-go/pkg/compiler"
	"luajs/transpiler-go/pkg/parser"
	"luajs/transpiler-go/pkg/runtime"
)

const helloWorld = `local greeting = "Hello"

function printHello()
  print(greeting)
  function printWorld()
    print("World")
  end
end

printHello()
printWorld()
printWorld = "oops"
printWorld()
`

func TestBuildWritesProgramAndTree(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, DefaultEntry), helloWorld)

	res, err := Build(DefaultConfig(dir))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	js := readFile(t, filepath.Join(dir, DefaultOutput))
	if js != res.Output {
		t.Fatalf("written program differs from result output")
	}
	for _, want := range []string{
		"import { LuaLib, LuaContext } from './lualib.js';\n",
		"let greeting = \"Hello\";\n",
		"$ctx.declareGlobalFn(\"printHello\", function () {\n",
		"$ctx.assignGlobal({ printWorld: \"oops\" });\n",
		"$ctx.callGlobalFn(\"printWorld\");\n",
	} {
		if !strings.Contains(js, want) {
			t.Fatalf("program missing %q:\n%s", want, js)
		}
	}

	tree := readFile(t, filepath.Join(dir, DefaultAST))
	if !strings.Contains(tree, `"type": "Chunk"`) {
		t.Fatalf("tree dump missing chunk node:\n%s", tree)
	}
	if _, err := os.Stat(filepath.Join(dir, runtime.LibraryFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("runtime library written without runtime.emit (stat err %v)", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("Files = %v, want program and tree", res.Files)
	}
}

func TestBuildEmitsRuntimeLibrary(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, "main.lua"), "print(1)\n")
	cfg := DefaultConfig(dir)
	cfg.Entry = "main.lua"
	cfg.Output = filepath.Join("dist", "main.js")
	cfg.AST = ""
	cfg.Runtime.Emit = true

	if _, err := Build(cfg); err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	lib := readFile(t, filepath.Join(dir, "dist", runtime.LibraryFileName))
	if lib != string(runtime.LibrarySource) {
		t.Fatalf("runtime library content mismatch")
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultAST)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("tree dump written with ast disabled (stat err %v)", err)
	}
}

func TestBuildWritesNothingOnFailure(t *testing.T) {
	cases := []struct {
		name   string
		source string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "syntax error",
			source: "local = 1\n",
			check: func(t *testing.T, err error) {
				var perr *parser.ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("expected *parser.ParseError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "unsupported statement",
			source: "while true do end\n",
			check: func(t *testing.T, err error) {
				var kerr *compiler.UnsupportedNodeKindError
				if !errors.As(err, &kerr) {
					t.Fatalf("expected *compiler.UnsupportedNodeKindError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "unsupported feature",
			source: "return 1, 2\n",
			check: func(t *testing.T, err error) {
				var ferr *compiler.UnsupportedFeatureError
				if !errors.As(err, &ferr) {
					t.Fatalf("expected *compiler.UnsupportedFeatureError, got %T: %v", err, err)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSource(t, filepath.Join(dir, DefaultEntry), tc.source)
			_, err := Build(DefaultConfig(dir))
			if err == nil {
				t.Fatalf("expected error")
			}
			tc.check(t, err)
			for _, name := range []string{DefaultOutput, DefaultAST} {
				if _, statErr := os.Stat(filepath.Join(dir, name)); !errors.Is(statErr, os.ErrNotExist) {
					t.Fatalf("%s written after failure (stat err %v)", name, statErr)
				}
			}
		})
	}
}

func TestBuildMissingEntry(t *testing.T) {
	_, err := Build(DefaultConfig(t.TempDir()))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
