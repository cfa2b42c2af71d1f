package interpreter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"luajs/transpiler-go/pkg/runtime"
)

const contextPreamble = "const $ctx = new LuaContext();\n"

func runScript(t *testing.T, src string) (*Interpreter, string, error) {
	t.Helper()
	var out bytes.Buffer
	interp := New(Options{Stdout: &out})
	err := interp.Run(context.Background(), "test.js", contextPreamble+src)
	return interp, out.String(), err
}

func TestPrintGoesToStdout(t *testing.T) {
	_, out, err := runScript(t, `$ctx.callGlobalFn("print", "Hello", 1, 2.5, null, true);`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "Hello\t1\t2.5\tnil\ttrue\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestAssignedGlobalsAreVisibleToGo(t *testing.T) {
	interp, _, err := runScript(t, `$ctx.assignGlobal({ a: 42, b: "x" });`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := interp.Globals().Get("a"); got != (runtime.NumberValue{Val: 42}) {
		t.Fatalf("a = %#v", got)
	}
	if got := interp.Globals().Get("b"); got != (runtime.StringValue{Val: "x"}) {
		t.Fatalf("b = %#v", got)
	}
}

func TestUnboundGlobalReadsNull(t *testing.T) {
	_, _, err := runScript(t, `if ($ctx.getGlobal("nope") !== null) { throw new Error("expected null"); }`)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestDeclaredFunctionsReturnValues(t *testing.T) {
	src := `
$ctx.declareGlobalFn("add", function (a, b) {
  return a + b;
});
$ctx.assignGlobal({ sum: $ctx.callGlobalFn("add", 2, 3) });
`
	interp, _, err := runScript(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := interp.Globals().Get("sum"); got != (runtime.NumberValue{Val: 5}) {
		t.Fatalf("sum = %#v", got)
	}
}

func TestCallingReassignedGlobalFails(t *testing.T) {
	src := `
$ctx.declareGlobalFn("declareGlobalPrintHello", function () {
  $ctx.declareGlobalFn("printHello", function () {
    $ctx.callGlobalFn("print", "Hello");
  });
});
$ctx.callGlobalFn("declareGlobalPrintHello");
$ctx.callGlobalFn("printHello");
$ctx.assignGlobal({ printHello: "xd" });
$ctx.callGlobalFn("printHello");
`
	_, out, err := runScript(t, src)
	if out != "Hello\n" {
		t.Fatalf("stdout = %q, want one greeting", out)
	}
	var notCallable *runtime.NotCallableError
	if !errors.As(err, &notCallable) {
		t.Fatalf("expected NotCallableError, got %v", err)
	}
	if notCallable.Name != "printHello" {
		t.Fatalf("not callable name = %q", notCallable.Name)
	}
	var runErr *RuntimeError
	if !errors.As(err, &runErr) || !strings.Contains(runErr.Message, "TypeError") {
		t.Fatalf("expected a TypeError runtime error, got %v", err)
	}
}

func TestNotCallableIsCatchableTypeError(t *testing.T) {
	src := `
let caught = false;
try {
  $ctx.callGlobalFn("missing");
} catch (e) {
  caught = e instanceof TypeError;
}
$ctx.assignGlobal({ caught: caught });
`
	interp, _, err := runScript(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := interp.Globals().Get("caught"); got != (runtime.BoolValue{Val: true}) {
		t.Fatalf("caught = %#v", got)
	}
}

func TestNestedFailureKeepsContextError(t *testing.T) {
	src := `
$ctx.declareGlobalFn("outer", function () {
  $ctx.callGlobalFn("inner");
});
$ctx.callGlobalFn("outer");
`
	_, _, err := runScript(t, src)
	var notCallable *runtime.NotCallableError
	if !errors.As(err, &notCallable) || notCallable.Name != "inner" {
		t.Fatalf("expected inner to be reported, got %v", err)
	}
}

func TestAssertFailureSurfaces(t *testing.T) {
	_, _, err := runScript(t, `$ctx.callGlobalFn("assert", false, "boom");`)
	var assertion *runtime.AssertionError
	if !errors.As(err, &assertion) || assertion.Message != "boom" {
		t.Fatalf("expected assertion error, got %v", err)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	interp := New(Options{Stdout: &bytes.Buffer{}})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := interp.Run(ctx, "loop.js", "for (;;) {}")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if err := interp.Run(context.Background(), "after.js", contextPreamble); err != nil {
		t.Fatalf("interpreter unusable after interrupt: %v", err)
	}
}

func TestRuntimeErrorCarriesLocation(t *testing.T) {
	_, _, err := runScript(t, "let a = 1;\nthrow new Error(\"boom\");\n")
	var runErr *RuntimeError
	if !errors.As(err, &runErr) {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(runErr.Location, "test.js:3:") {
		t.Fatalf("Location = %q, want line 3 of test.js", runErr.Location)
	}
	if !strings.Contains(runErr.Error(), "boom") {
		t.Fatalf("Error() = %q", runErr.Error())
	}
}
