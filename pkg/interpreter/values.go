package interpreter

import (
	"github.com/dop251/goja"

	"luajs/transpiler-go/pkg/runtime"
)

// fromJS converts a VM value to a runtime value. name labels functions.
func (i *Interpreter) fromJS(name string, value goja.Value) runtime.Value {
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return runtime.NilValue{}
	}
	if fn, ok := goja.AssertFunction(value); ok {
		return &runtime.FunctionValue{Name: name, Call: i.callJS(fn)}
	}
	switch exported := value.Export().(type) {
	case bool:
		return runtime.BoolValue{Val: exported}
	case int64:
		return runtime.NumberValue{Val: float64(exported)}
	case float64:
		return runtime.NumberValue{Val: exported}
	case string:
		return runtime.StringValue{Val: exported}
	default:
		return runtime.HostValue{Val: value}
	}
}

// toJS converts a runtime value to a VM value.
func (i *Interpreter) toJS(value runtime.Value) goja.Value {
	switch val := value.(type) {
	case nil, runtime.NilValue:
		return goja.Null()
	case runtime.BoolValue:
		return i.vm.ToValue(val.Val)
	case runtime.NumberValue:
		return i.vm.ToValue(val.Val)
	case runtime.StringValue:
		return i.vm.ToValue(val.Val)
	case *runtime.FunctionValue:
		return i.wrapFunction(val)
	case runtime.HostValue:
		if jsValue, ok := val.Val.(goja.Value); ok {
			return jsValue
		}
		return i.vm.ToValue(val.Val)
	default:
		return goja.Undefined()
	}
}

func (i *Interpreter) callJS(fn goja.Callable) runtime.Function {
	return func(args []runtime.Value) (runtime.Value, error) {
		jsArgs := make([]goja.Value, 0, len(args))
		for _, arg := range args {
			jsArgs = append(jsArgs, i.toJS(arg))
		}
		result, err := fn(goja.Undefined(), jsArgs...)
		if err != nil {
			return nil, err
		}
		return i.fromJS("", result), nil
	}
}

// wrapFunction exposes a Go function value to the VM.
func (i *Interpreter) wrapFunction(fn *runtime.FunctionValue) goja.Value {
	return i.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		args := make([]runtime.Value, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			args = append(args, i.fromJS("", arg))
		}
		result, err := fn.Call(args)
		if err != nil {
			i.throw(err)
		}
		return i.toJS(result)
	})
}
