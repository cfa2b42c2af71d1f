package runtime

import (
	"fmt"
	"io"
	"strings"
)

// AssertionError is raised by the assert builtin.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Library returns the builtins every context starts with. print writes to out.
func Library(out io.Writer) map[string]Value {
	if out == nil {
		out = io.Discard
	}
	return map[string]Value{
		"print":  NewFunction("print", printBuiltin(out)),
		"type":   NewFunction("type", typeBuiltin),
		"assert": NewFunction("assert", assertBuiltin),
	}
}

func printBuiltin(out io.Writer) Function {
	return func(args []Value) (Value, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, ToString(arg))
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, "\t")); err != nil {
			return nil, fmt.Errorf("print: %w", err)
		}
		return NilValue{}, nil
	}
}

func typeBuiltin(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("bad argument #1 to 'type' (value expected)")
	}
	return StringValue{Val: KindOf(args[0]).String()}, nil
}

func assertBuiltin(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("bad argument #1 to 'assert' (value expected)")
	}
	if Truthy(args[0]) {
		return args[0], nil
	}
	msg := "assertion failed!"
	if len(args) > 1 && KindOf(args[1]) != KindNil {
		msg = ToString(args[1])
	}
	return nil, &AssertionError{Message: msg}
}
