package compiler

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"luajs/transpiler-go/pkg/interpreter"
	"luajs/transpiler-go/pkg/parser"
	"luajs/transpiler-go/pkg/runtime"
)

// execLua translates source as a script and runs it, returning what it
// printed and the run error.
func execLua(t *testing.T, source string) (string, error) {
	t.Helper()
	chunk, err := parser.Parse([]byte(source))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := New(Options{Format: FormatScript}).Compile(chunk)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var out bytes.Buffer
	interp := interpreter.New(interpreter.Options{Stdout: &out})
	runErr := interp.Run(context.Background(), "main.js", res.Output())
	return out.String(), runErr
}

func TestExecReassignedGlobalIsNotCallable(t *testing.T) {
	source := `function declareGlobalPrintHello()
  function printHello()
    print("Hello")
  end
end

declareGlobalPrintHello()
printHello()
printHello = "xd"
printHello()
`
	out, err := execLua(t, source)
	if out != "Hello\n" {
		t.Fatalf("stdout = %q, want %q", out, "Hello\n")
	}
	var notCallable *runtime.NotCallableError
	if !errors.As(err, &notCallable) {
		t.Fatalf("expected *runtime.NotCallableError, got %T: %v", err, err)
	}
	if notCallable.Name != "printHello" {
		t.Fatalf("Name = %q, want printHello", notCallable.Name)
	}
}

func TestExecLocalsGlobalsAndOperators(t *testing.T) {
	source := `local count = 0
local function bump(n)
  count = count + n
  return count
end
bump(2)
print(bump(3))

local a, b = 1, 2
a, b = b, a
print(a, b)

if a > b then
  print("swapped")
elseif a == b then
  print("same")
else
  print("unchanged")
end

total = a + b
print(total)
print("x" .. "y", 2 ^ 3, not nil, #"four")
print(type(print), type(1), type("s"), type(nil))
`
	out, err := execLua(t, source)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "5\n" +
		"2\t1\n" +
		"swapped\n" +
		"3\n" +
		"xy\t8\ttrue\t4\n" +
		"function\tnumber\tstring\tnil\n"
	if out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestExecClauseLocalsShadow(t *testing.T) {
	source := `local x = "outer"
if true then
  local x = "inner"
  print(x)
end
print(x)

function set()
  x = "assigned"
end
set()
print(x)
`
	out, err := execLua(t, source)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "inner\nouter\nassigned\n"; out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestExecLocalFunctionStaysInItsFrame(t *testing.T) {
	source := `function outer()
  local function inner() return "inner" end
  return inner()
end
print(outer())
print(inner)
`
	out, err := execLua(t, source)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "inner\nnil\n"; out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestExecBlockLocalShadowsEnclosingLocal(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "initializer reads the enclosing local",
			source: `local x = 1
if true then
  local x = x + 1
  print(x)
end
print(x)
`,
			want: "2\n1\n",
		},
		{
			name: "read before the shadowing declaration",
			source: `local x = 1
if true then
  print(x)
  local x = 2
  print(x)
end
`,
			want: "1\n2\n",
		},
		{
			name: "parameter shadows a chunk local",
			source: `local n = 10
function twice(n)
  local function add() return n + n end
  return add()
end
print(twice(2), n)
`,
			want: "4\t10\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execLua(t, tc.source)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if out != tc.want {
				t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, tc.want)
			}
		})
	}
}

func TestExecPrototypeNamedGlobal(t *testing.T) {
	source := `__proto__ = 5
print(__proto__)
__proto__, other = 6, 7
print(__proto__, other)
`
	out, err := execLua(t, source)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "5\n6\t7\n"; out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestExecNotEqualIsStrict(t *testing.T) {
	out, err := execLua(t, `print(1 ~= "1", 1 ~= 1)
`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "true\tfalse\n"; out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestExecMultipleAssignmentToGlobals(t *testing.T) {
	source := `local l
l, g1, g2 = 1, 2
print(l, g1, g2)
`
	out, err := execLua(t, source)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "1\t2\tnil\n"; out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}
