package runtime

import "sync"

// Globals is the Go implementation of Context.
type Globals struct {
	mu     sync.RWMutex
	values map[string]Value
}

// NewGlobals seeds a context with the given library bindings.
func NewGlobals(lib map[string]Value) *Globals {
	g := &Globals{values: make(map[string]Value, len(lib))}
	for name, value := range lib {
		g.values[name] = value
	}
	return g
}

func (g *Globals) Get(name string) Value {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if value, ok := g.values[name]; ok && value != nil {
		return value
	}
	return NilValue{}
}

func (g *Globals) Set(values map[string]Value) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for name, value := range values {
		if value == nil {
			value = NilValue{}
		}
		g.values[name] = value
	}
}

func (g *Globals) DeclareFunction(name string, fn *FunctionValue) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[name] = fn
}

func (g *Globals) CallFunction(name string, args ...Value) (Value, error) {
	value := g.Get(name)
	fn, ok := value.(*FunctionValue)
	if !ok || fn == nil || fn.Call == nil {
		return nil, &NotCallableError{Name: name, Kind: KindOf(value)}
	}
	result, err := fn.Call(args)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return NilValue{}, nil
	}
	return result, nil
}

var _ Context = (*Globals)(nil)
