package runtime

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the Lua type of a runtime value.
type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindFunction
	KindUserdata
)

// String returns the name Lua's type() reports for the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindUserdata:
		return "userdata"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBoolean }

type NumberValue struct {
	Val float64
}

func (NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

// Function is the Go signature of anything callable through the context.
type Function func(args []Value) (Value, error)

type FunctionValue struct {
	Name string
	Call Function
}

func (*FunctionValue) Kind() Kind { return KindFunction }

// HostValue carries a value owned by the embedding host, such as a
// JavaScript object, through the context untouched.
type HostValue struct {
	Val any
}

func (HostValue) Kind() Kind { return KindUserdata }

// NewFunction wraps fn as a named function value.
func NewFunction(name string, fn Function) *FunctionValue {
	return &FunctionValue{Name: name, Call: fn}
}

// Truthy applies Lua's rule: only nil and false are false.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, NilValue:
		return false
	case BoolValue:
		return val.Val
	default:
		return true
	}
}

// ToString formats a value the way Lua's tostring does.
func ToString(v Value) string {
	switch val := v.(type) {
	case nil, NilValue:
		return "nil"
	case BoolValue:
		return strconv.FormatBool(val.Val)
	case NumberValue:
		return FormatNumber(val.Val)
	case StringValue:
		return val.Val
	case *FunctionValue:
		if val.Name != "" {
			return "function: " + val.Name
		}
		return fmt.Sprintf("function: %p", val)
	case HostValue:
		return fmt.Sprintf("userdata: %v", val.Val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatNumber prints integral values without a fraction and everything
// else with 14 significant digits.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatFloat(f, 'f', 0, 64)
	default:
		return strconv.FormatFloat(f, 'g', 14, 64)
	}
}

// KindOf reports the kind of v, treating a nil interface as Lua nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNil
	}
	return v.Kind()
}
