package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"

	"luajs/transpiler-go/pkg/runtime"
)

type Options struct {
	// Stdout receives the output of print. Defaults to os.Stdout.
	Stdout io.Writer
}

// Interpreter owns one JavaScript VM and the globals its programs share.
// It is not safe for concurrent use.
type Interpreter struct {
	vm      *goja.Runtime
	globals *runtime.Globals
	// fault is the Go error behind the most recent exception raised by the
	// context, kept so callers can match it with errors.As.
	fault error
}

func New(opts Options) *Interpreter {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	interp := &Interpreter{
		vm:      goja.New(),
		globals: runtime.NewGlobals(runtime.Library(out)),
	}
	interp.install()
	return interp
}

// Globals exposes the context every `new LuaContext()` is bound to.
func (i *Interpreter) Globals() *runtime.Globals {
	return i.globals
}

// Run executes a translated program in script form. Cancelling ctx interrupts
// the program.
func (i *Interpreter) Run(ctx context.Context, name, src string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	i.fault = nil
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			i.vm.Interrupt(ctx.Err())
		case <-stop:
		}
	}()

	_, err := i.vm.RunScript(name, src)
	if ctx.Err() != nil {
		i.vm.ClearInterrupt()
	}
	if err == nil {
		return nil
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Errorf("interpreter: %s interrupted: %w", name, ctx.Err())
	}
	runErr := &RuntimeError{Message: err.Error(), Err: err}
	if i.fault != nil {
		runErr.Err = i.fault
	}
	var exception *goja.Exception
	if errors.As(err, &exception) {
		if exception.Value() != nil {
			runErr.Message = exception.Value().String()
		}
		runErr.Location = exceptionLocation(exception)
	}
	return runErr
}

// install defines LuaLib and the LuaContext constructor in the VM.
func (i *Interpreter) install() {
	lib := i.vm.NewObject()
	for _, name := range []string{"print", "type", "assert"} {
		_ = lib.Set(name, i.toJS(i.globals.Get(name)))
	}
	_ = i.vm.Set(runtime.LibraryName, lib)
	_ = i.vm.Set(runtime.ContextClass, func(call goja.ConstructorCall) *goja.Object {
		i.bindContext(call.This)
		return nil
	})
}

func (i *Interpreter) bindContext(obj *goja.Object) {
	_ = obj.Set(runtime.MethodGetGlobal, func(call goja.FunctionCall) goja.Value {
		return i.toJS(i.globals.Get(call.Argument(0).String()))
	})
	_ = obj.Set(runtime.MethodAssignGlobal, func(call goja.FunctionCall) goja.Value {
		values := call.Argument(0)
		if goja.IsUndefined(values) || goja.IsNull(values) {
			return goja.Undefined()
		}
		fields := values.ToObject(i.vm)
		batch := make(map[string]runtime.Value)
		for _, key := range fields.Keys() {
			batch[key] = i.fromJS(key, fields.Get(key))
		}
		i.globals.Set(batch)
		return goja.Undefined()
	})
	_ = obj.Set(runtime.MethodDeclareGlobalFn, func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		value := i.fromJS(name, call.Argument(1))
		fn, ok := value.(*runtime.FunctionValue)
		if !ok {
			i.throw(&runtime.NotCallableError{Name: name, Kind: runtime.KindOf(value)})
		}
		i.globals.DeclareFunction(name, fn)
		return goja.Undefined()
	})
	_ = obj.Set(runtime.MethodCallGlobalFn, func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		args := make([]runtime.Value, 0, len(call.Arguments))
		for idx := 1; idx < len(call.Arguments); idx++ {
			args = append(args, i.fromJS("", call.Arguments[idx]))
		}
		result, err := i.globals.CallFunction(name, args...)
		if err != nil {
			i.throw(err)
		}
		return i.toJS(result)
	})
}

// throw raises err inside the VM. Context faults become TypeErrors, the
// same as the JavaScript runtime library raises.
func (i *Interpreter) throw(err error) {
	var exception *goja.Exception
	if errors.As(err, &exception) {
		panic(exception)
	}
	var notCallable *runtime.NotCallableError
	if errors.As(err, &notCallable) {
		i.fault = err
		panic(i.vm.NewTypeError(err.Error()))
	}
	i.fault = err
	panic(i.vm.NewGoError(err))
}
