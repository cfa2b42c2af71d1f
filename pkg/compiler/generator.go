package compiler

import (
	"fmt"
	"strings"

	"luajs/transpiler-go/pkg/ast"
)

type generator struct {
	opts     Options
	scopes   *scopeTracker
	warnings []string
}

func newGenerator(opts Options) *generator {
	return &generator{
		opts:   opts,
		scopes: newScopeTracker(),
	}
}

func (g *generator) warnf(node ast.Node, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if node != nil && !node.Span().IsZero() {
		msg = fmt.Sprintf("%s: %s", node.Span(), msg)
	}
	g.warnings = append(g.warnings, "compiler: "+msg)
}

// translateChunk enters the chunk frame and translates the top-level
// statements without indentation.
func (g *generator) translateChunk(chunk *ast.Chunk) ([]string, error) {
	g.scopes.enter()
	for _, stmt := range chunk.Body {
		if _, ok := stmt.(*ast.ReturnStatement); ok {
			g.warnf(stmt, "return at chunk level is kept but is not valid in a JavaScript module")
		}
	}
	return g.translateBody(chunk.Body, false)
}

// translate routes a node to the processor for its category. value is set
// when the node is read for its value, which decides how identifiers are
// resolved.
func (g *generator) translate(node ast.Node, value bool) (string, error) {
	if node == nil {
		return "", fmt.Errorf("compiler: missing node")
	}
	switch node.Category() {
	case ast.CategoryStatement:
		return g.translateStatement(node)
	case ast.CategoryExpression:
		return g.translateExpression(node)
	case ast.CategoryLiteral:
		return g.translateLiteral(node)
	case ast.CategoryIdentifier:
		return g.translateIdentifier(node, value)
	case ast.CategoryDeclaration:
		return g.translateDeclaration(node)
	case ast.CategoryClause:
		return g.translateClause(node)
	default:
		return "", unsupportedKind(node)
	}
}

func (g *generator) translateValue(expr ast.Expression) (string, error) {
	return g.translate(expr, true)
}

func (g *generator) translateValues(exprs []ast.Expression) ([]string, error) {
	values := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		value, err := g.translateValue(expr)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// translateBody translates a statement list into lines. Nested bodies are
// indented one level.
func (g *generator) translateBody(stmts []ast.Statement, indent bool) ([]string, error) {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		code, err := g.translate(stmt, false)
		if err != nil {
			return nil, err
		}
		lines = append(lines, strings.Split(code, "\n")...)
	}
	if indent {
		return indentLines(lines, g.opts.Indent), nil
	}
	return lines, nil
}

// block wraps body lines in braces after header.
func block(header string, body []string) string {
	if len(body) == 0 {
		return header + " {\n}"
	}
	return header + " {\n" + strings.Join(body, "\n") + "\n}"
}

func indentLines(lines []string, prefix string) []string {
	if len(lines) == 0 || prefix == "" {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, line)
			continue
		}
		out = append(out, prefix+line)
	}
	return out
}
