package runtime

import "fmt"

// Names shared between the translator and every runtime implementation.
// Translated programs reach globals only through these.
const (
	ContextName  = "$ctx"
	ContextClass = "LuaContext"
	LibraryName  = "LuaLib"

	MethodGetGlobal       = "getGlobal"
	MethodAssignGlobal    = "assignGlobal"
	MethodDeclareGlobalFn = "declareGlobalFn"
	MethodCallGlobalFn    = "callGlobalFn"
)

// Context is the store of Lua globals a translated program runs against.
type Context interface {
	// Get returns the value bound to name, or NilValue when unbound.
	Get(name string) Value
	// Set binds every entry of values.
	Set(values map[string]Value)
	DeclareFunction(name string, fn *FunctionValue)
	// CallFunction invokes the function bound to name. A binding that is not
	// a function yields *NotCallableError.
	CallFunction(name string, args ...Value) (Value, error)
}

type NotCallableError struct {
	Name string
	Kind Kind
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("[%s] %s is not a function.", ContextClass, e.Name)
}
