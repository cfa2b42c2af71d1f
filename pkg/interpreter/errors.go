package interpreter

import (
	"fmt"

	"github.com/dop251/goja"
)

// RuntimeError is an uncaught exception from a translated program. Err is
// the Go error behind it when the runtime context raised it, otherwise the
// engine's own exception.
type RuntimeError struct {
	Message string
	// Location is file:line:column of the innermost JavaScript frame.
	Location string
	Err      error
}

func (e *RuntimeError) Error() string {
	if e.Location == "" {
		return "runtime error: " + e.Message
	}
	return fmt.Sprintf("runtime error: %s: %s", e.Location, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// exceptionLocation skips native frames, which carry no source position.
func exceptionLocation(exception *goja.Exception) string {
	stack := exception.Stack()
	for idx := range stack {
		pos := stack[idx].Position()
		if pos.Line > 0 {
			return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
		}
	}
	return ""
}
