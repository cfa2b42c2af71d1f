package compiler

import (
	"strings"

	"luajs/transpiler-go/pkg/ast"
)

// translateStatement emits one JavaScript statement terminated by ';'.
func (g *generator) translateStatement(node ast.Node) (string, error) {
	var (
		code string
		err  error
	)
	switch stmt := node.(type) {
	case *ast.CallStatement:
		code, err = g.translateCallStatement(stmt)
	case *ast.ReturnStatement:
		code, err = g.translateReturn(stmt)
	case *ast.IfStatement:
		code, err = g.translateIf(stmt)
	case *ast.LocalStatement:
		code, err = g.translateLocal(stmt)
	case *ast.AssignmentStatement:
		code, err = g.translateAssignment(stmt)
	default:
		return "", unsupportedKind(node)
	}
	if err != nil {
		return "", err
	}
	return code + ";", nil
}

func (g *generator) translateCallStatement(stmt *ast.CallStatement) (string, error) {
	if stmt.Expression == nil {
		return "", unsupportedKind(stmt)
	}
	return g.translateCall(stmt.Expression)
}

func (g *generator) translateReturn(stmt *ast.ReturnStatement) (string, error) {
	switch len(stmt.Arguments) {
	case 0:
		return "return", nil
	case 1:
		value, err := g.translateValue(stmt.Arguments[0])
		if err != nil {
			return "", err
		}
		return "return " + value, nil
	default:
		return "", unsupportedFeature(stmt, "multiple return values")
	}
}

func (g *generator) translateIf(stmt *ast.IfStatement) (string, error) {
	clauses := make([]string, 0, len(stmt.Clauses))
	for _, clause := range stmt.Clauses {
		code, err := g.translate(clause, false)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, code)
	}
	return strings.Join(clauses, "\n"), nil
}
