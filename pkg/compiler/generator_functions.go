package compiler

import (
	"fmt"
	"strings"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/runtime"
)

// translateDeclaration handles function declarations. Named declarations are
// followed by a blank line; anonymous functions are plain expressions.
func (g *generator) translateDeclaration(node ast.Node) (string, error) {
	fn, ok := node.(*ast.FunctionDeclaration)
	if !ok {
		return "", unsupportedKind(node)
	}
	if fn.Identifier == nil {
		return g.translateFunction(fn, "")
	}
	id, ok := fn.Identifier.(*ast.Identifier)
	if !ok {
		return "", unsupportedKind(fn.Identifier)
	}
	if fn.IsLocal {
		// Declared before the body so the function can call itself.
		g.scopes.declareLocal(id.Name)
		binding, _ := g.scopes.binding(id.Name)
		code, err := g.translateFunction(fn, binding)
		if err != nil {
			return "", err
		}
		return code + "\n", nil
	}
	code, err := g.translateFunction(fn, "")
	if err != nil {
		return "", err
	}
	if binding, ok := g.scopes.binding(id.Name); ok {
		// `function f()` assigns to a visible local f.
		return fmt.Sprintf("%s = %s;\n", binding, code), nil
	}
	return fmt.Sprintf("%s.%s(%s, %s);\n", runtime.ContextName, runtime.MethodDeclareGlobalFn, globalKey(id.Name), code), nil
}

// translateFunction emits the function expression itself inside a fresh
// frame holding the parameters.
func (g *generator) translateFunction(fn *ast.FunctionDeclaration, name string) (string, error) {
	if fn.IsVararg {
		return "", unsupportedFeature(fn, "variadic parameters")
	}
	g.scopes.enter()
	defer g.scopes.exit()

	params := make([]string, 0, len(fn.Parameters))
	for _, param := range fn.Parameters {
		g.scopes.declareLocal(param.Name)
		binding, _ := g.scopes.binding(param.Name)
		params = append(params, binding)
	}
	body, err := g.translateBody(fn.Body, true)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("function (%s)", strings.Join(params, ", "))
	if name != "" {
		header = fmt.Sprintf("function %s(%s)", name, strings.Join(params, ", "))
	}
	return block(header, body), nil
}
