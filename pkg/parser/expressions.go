package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"luajs/transpiler-go/pkg/ast"
)

func (ctx *parseContext) parseExpressionList(node *sitter.Node) ([]ast.Expression, error) {
	var exprs []ast.Expression
	for _, child := range namedChildren(node) {
		expr, err := ctx.parseExpression(child)
		if err != nil {
			return nil, wrapParseError(child, err)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func (ctx *parseContext) parseExpression(node *sitter.Node) (ast.Expression, error) {
	if node == nil {
		return nil, fmt.Errorf("parser: missing expression")
	}
	var expr ast.Expression
	switch node.Kind() {
	case "identifier":
		return ctx.parseIdentifier(node), nil
	case "number":
		lit, err := parseNumber(ctx.text(node))
		if err != nil {
			return nil, err
		}
		expr = lit
	case "string":
		lit, err := parseString(ctx.text(node))
		if err != nil {
			return nil, err
		}
		expr = lit
	case "true":
		expr = ast.NewBooleanLiteral(true)
	case "false":
		expr = ast.NewBooleanLiteral(false)
	case "nil":
		expr = ast.NewNilLiteral()
	case "parenthesized_expression", "expression":
		return ctx.parseExpression(firstNamedChild(node))
	case "function_call":
		return ctx.parseCall(node)
	case "binary_expression":
		return ctx.parseBinary(node)
	case "unary_expression":
		op := operatorToken(node)
		if op == nil {
			return nil, fmt.Errorf("parser: unary expression without operator")
		}
		arg, err := ctx.parseExpression(field(node, "operand", ""))
		if err != nil {
			return nil, err
		}
		expr = ast.NewUnaryExpression(op.Kind(), arg)
	case "function_definition":
		fn, err := ctx.parseFunctionBody(node, nil, false)
		if err != nil {
			return nil, err
		}
		return fn, nil
	case "dot_index_expression", "method_index_expression":
		return unsupported(ast.NodeMemberExpression, node, ctx.source), nil
	case "bracket_index_expression":
		return unsupported(ast.NodeIndexExpression, node, ctx.source), nil
	case "table_constructor":
		return unsupported(ast.NodeTableConstructorExpression, node, ctx.source), nil
	case "vararg_expression":
		return unsupported(ast.NodeVarargLiteral, node, ctx.source), nil
	default:
		return nil, fmt.Errorf("parser: unsupported expression %q", node.Kind())
	}
	annotateSpan(expr, node)
	return expr, nil
}

func (ctx *parseContext) parseIdentifier(node *sitter.Node) *ast.Identifier {
	id := ast.NewIdentifier(ctx.text(node))
	annotateSpan(id, node)
	return id
}

// parseCall reads `f(a, b)`, `f "s"` and `f {...}`; the last two become
// one-argument calls.
func (ctx *parseContext) parseCall(node *sitter.Node) (*ast.CallExpression, error) {
	calleeNode := field(node, "name", "")
	if calleeNode == nil {
		calleeNode = firstNamedChild(node)
	}
	callee, err := ctx.parseExpression(calleeNode)
	if err != nil {
		return nil, err
	}
	var args []ast.Expression
	if argsNode := field(node, "arguments", "arguments"); argsNode != nil {
		if argsNode.Kind() == "arguments" {
			args, err = ctx.parseExpressionList(argsNode)
		} else {
			var arg ast.Expression
			arg, err = ctx.parseExpression(argsNode)
			args = []ast.Expression{arg}
		}
		if err != nil {
			return nil, err
		}
	}
	call := ast.NewCallExpression(callee, args)
	annotateSpan(call, node)
	return call, nil
}

func (ctx *parseContext) parseBinary(node *sitter.Node) (ast.Expression, error) {
	children := namedChildren(node)
	leftNode := field(node, "left", "")
	rightNode := field(node, "right", "")
	if leftNode == nil && len(children) > 0 {
		leftNode = children[0]
	}
	if rightNode == nil && len(children) > 1 {
		rightNode = children[len(children)-1]
	}
	op := operatorToken(node)
	if op == nil {
		return nil, fmt.Errorf("parser: binary expression without operator")
	}
	left, err := ctx.parseExpression(leftNode)
	if err != nil {
		return nil, err
	}
	right, err := ctx.parseExpression(rightNode)
	if err != nil {
		return nil, err
	}
	var expr ast.Expression
	switch operator := op.Kind(); operator {
	case "and", "or":
		expr = ast.NewLogicalExpression(operator, left, right)
	default:
		expr = ast.NewBinaryExpression(operator, left, right)
	}
	annotateSpan(expr, node)
	return expr, nil
}

// parseNumber computes the value of a Lua numeral. Hexadecimal integers wrap
// around 64 bits as Lua's do; numerals too large for a float become
// infinity.
func parseNumber(raw string) (*ast.NumericLiteral, error) {
	text := strings.ToLower(raw)
	var (
		value float64
		err   error
	)
	if strings.HasPrefix(text, "0x") {
		if !strings.ContainsAny(text, ".p") {
			if u, uerr := strconv.ParseUint(text[2:], 16, 64); uerr == nil {
				return ast.NewNumericLiteral(float64(int64(u)), raw), nil
			}
		}
		if !strings.Contains(text, "p") {
			text += "p0"
		}
	}
	value, err = strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return nil, fmt.Errorf("parser: malformed number %q", raw)
		}
	}
	return ast.NewNumericLiteral(value, raw), nil
}

// parseString keeps the token text. Long-bracket strings also carry their
// decoded content since their spelling has no equivalent outside Lua.
func parseString(raw string) (*ast.StringLiteral, error) {
	if !strings.HasPrefix(raw, "[") {
		return ast.NewStringLiteral(raw), nil
	}
	level := 0
	for level+1 < len(raw) && raw[level+1] == '=' {
		level++
	}
	open := level + 2
	closing := "]" + strings.Repeat("=", level) + "]"
	if len(raw) < open+len(closing) || raw[open-1] != '[' || !strings.HasSuffix(raw, closing) {
		return nil, fmt.Errorf("parser: malformed long string")
	}
	content := raw[open : len(raw)-len(closing)]
	// A newline right after the opening bracket is not part of the string.
	switch {
	case strings.HasPrefix(content, "\r\n"):
		content = content[2:]
	case strings.HasPrefix(content, "\n\r"):
		content = content[2:]
	case strings.HasPrefix(content, "\n"), strings.HasPrefix(content, "\r"):
		content = content[1:]
	}
	return ast.LongStr(raw, content), nil
}
