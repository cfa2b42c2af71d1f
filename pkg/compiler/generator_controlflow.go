package compiler

import (
	"fmt"

	"luajs/transpiler-go/pkg/ast"
)

// translateClause emits one branch of an if statement. Every clause body
// gets its own frame.
func (g *generator) translateClause(node ast.Node) (string, error) {
	switch clause := node.(type) {
	case *ast.IfClause:
		return g.translateConditional("if", clause.Condition, clause.Body)
	case *ast.ElseifClause:
		return g.translateConditional("else if", clause.Condition, clause.Body)
	case *ast.ElseClause:
		g.scopes.enter()
		defer g.scopes.exit()
		body, err := g.translateBody(clause.Body, true)
		if err != nil {
			return "", err
		}
		return block("else", body), nil
	default:
		return "", unsupportedKind(node)
	}
}

func (g *generator) translateConditional(keyword string, condition ast.Expression, stmts []ast.Statement) (string, error) {
	g.scopes.enter()
	defer g.scopes.exit()
	cond, err := g.translateValue(condition)
	if err != nil {
		return "", err
	}
	body, err := g.translateBody(stmts, true)
	if err != nil {
		return "", err
	}
	return block(fmt.Sprintf("%s (%s)", keyword, cond), body), nil
}
