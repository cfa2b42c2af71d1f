package compiler

import (
	"fmt"
	"strings"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/runtime"
)

// operatorTable maps Lua operators whose JavaScript spelling differs. Every
// other operator is emitted unchanged.
var operatorTable = map[string]string{
	"and": "&&",
	"or":  "||",
	"~=":  "!==",
	"..":  "+",
	"^":   "**",
}

func (g *generator) translateExpression(node ast.Node) (string, error) {
	switch expr := node.(type) {
	case *ast.CallExpression:
		return g.translateCall(expr)
	case *ast.BinaryExpression:
		return g.translateBinary(expr, expr.Operator, expr.Left, expr.Right)
	case *ast.LogicalExpression:
		return g.translateBinary(expr, expr.Operator, expr.Left, expr.Right)
	case *ast.UnaryExpression:
		return g.translateUnary(expr)
	default:
		return "", unsupportedKind(node)
	}
}

// translateCall emits a direct call for locals and a runtime context call
// for globals. Only plain names can be called.
func (g *generator) translateCall(call *ast.CallExpression) (string, error) {
	id, ok := call.Base.(*ast.Identifier)
	if !ok {
		return "", unsupportedKind(call.Base)
	}
	args, err := g.translateValues(call.Arguments)
	if err != nil {
		return "", err
	}
	if binding, ok := g.scopes.binding(id.Name); ok {
		return fmt.Sprintf("%s(%s)", binding, strings.Join(args, ", ")), nil
	}
	if len(args) == 0 {
		return fmt.Sprintf("%s.%s(%s)", runtime.ContextName, runtime.MethodCallGlobalFn, globalKey(id.Name)), nil
	}
	return fmt.Sprintf("%s.%s(%s, %s)", runtime.ContextName, runtime.MethodCallGlobalFn, globalKey(id.Name), strings.Join(args, ", ")), nil
}

func (g *generator) translateBinary(node ast.Node, operator string, left, right ast.Expression) (string, error) {
	if operator == "//" {
		return "", unsupportedFeature(node, "floor division")
	}
	if mapped, ok := operatorTable[operator]; ok {
		operator = mapped
	}
	lhs, err := g.translateOperand(left)
	if err != nil {
		return "", err
	}
	rhs, err := g.translateOperand(right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", lhs, operator, rhs), nil
}

func (g *generator) translateUnary(expr *ast.UnaryExpression) (string, error) {
	switch expr.Operator {
	case "#":
		value, err := g.translateValue(expr.Argument)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s).length", value), nil
	case "not":
		operand, err := g.translateOperand(expr.Argument)
		if err != nil {
			return "", err
		}
		return "!" + operand, nil
	case "-", "~":
		operand, err := g.translateOperand(expr.Argument)
		if err != nil {
			return "", err
		}
		return expr.Operator + operand, nil
	default:
		return "", unsupportedFeature(expr, fmt.Sprintf("unary operator %q", expr.Operator))
	}
}

// translateOperand reads an operand, wrapping it in parentheses unless it is
// a plain name or a literal.
func (g *generator) translateOperand(expr ast.Expression) (string, error) {
	value, err := g.translateValue(expr)
	if err != nil {
		return "", err
	}
	if needsParens(expr) {
		return "(" + value + ")", nil
	}
	return value, nil
}

func needsParens(expr ast.Expression) bool {
	if expr == nil {
		return false
	}
	switch expr.Category() {
	case ast.CategoryIdentifier, ast.CategoryLiteral:
		return false
	default:
		return true
	}
}

// translateIdentifier resolves a name. Reads of names that are not locally
// reachable go through the runtime context; everything else is the bare
// binding.
func (g *generator) translateIdentifier(node ast.Node, value bool) (string, error) {
	id, ok := node.(*ast.Identifier)
	if !ok {
		return "", unsupportedKind(node)
	}
	if binding, ok := g.scopes.binding(id.Name); ok {
		return binding, nil
	}
	if value {
		return fmt.Sprintf("%s.%s(%s)", runtime.ContextName, runtime.MethodGetGlobal, globalKey(id.Name)), nil
	}
	return jsName(id.Name), nil
}
