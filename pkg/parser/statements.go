package parser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"luajs/transpiler-go/pkg/ast"
)

// parseBlock turns the statements of a chunk or block node into a body. A
// nil node is an empty body.
func (ctx *parseContext) parseBlock(node *sitter.Node) ([]ast.Statement, error) {
	if node == nil {
		return nil, nil
	}
	var body []ast.Statement
	for _, child := range namedChildren(node) {
		switch child.Kind() {
		case "block", "statement", "declaration":
			nested, err := ctx.parseBlock(child)
			if err != nil {
				return nil, err
			}
			body = append(body, nested...)
			continue
		case "empty_statement":
			continue
		}
		stmt, err := ctx.parseStatement(child)
		if err != nil {
			return nil, wrapParseError(child, err)
		}
		body = append(body, stmt)
	}
	return body, nil
}

func (ctx *parseContext) parseStatement(node *sitter.Node) (ast.Statement, error) {
	switch node.Kind() {
	case "function_call":
		call, err := ctx.parseCall(node)
		if err != nil {
			return nil, err
		}
		stmt := ast.NewCallStatement(call)
		annotateSpan(stmt, node)
		return stmt, nil
	case "return_statement":
		return ctx.parseReturn(node)
	case "if_statement":
		return ctx.parseIf(node)
	case "variable_declaration":
		return ctx.parseLocal(node)
	case "assignment_statement":
		return ctx.parseAssignment(node)
	case "function_declaration":
		// `local function f` shares the node kind; only the keyword tells them apart.
		return ctx.parseFunctionDeclaration(node, hasToken(node, "local"))
	case "while_statement":
		return unsupported(ast.NodeWhileStatement, node, ctx.source), nil
	case "repeat_statement":
		return unsupported(ast.NodeRepeatStatement, node, ctx.source), nil
	case "do_statement":
		return unsupported(ast.NodeDoStatement, node, ctx.source), nil
	case "for_statement":
		kind := ast.NodeForGenericStatement
		if clause := field(node, "clause", "for_numeric_clause"); clause != nil && clause.Kind() == "for_numeric_clause" {
			kind = ast.NodeForNumericStatement
		}
		return unsupported(kind, node, ctx.source), nil
	case "break_statement":
		return unsupported(ast.NodeBreakStatement, node, ctx.source), nil
	case "goto_statement":
		return unsupported(ast.NodeGotoStatement, node, ctx.source), nil
	case "label_statement":
		return unsupported(ast.NodeLabelStatement, node, ctx.source), nil
	default:
		return nil, fmt.Errorf("parser: unsupported statement %q", node.Kind())
	}
}

func (ctx *parseContext) parseReturn(node *sitter.Node) (ast.Statement, error) {
	var args []ast.Expression
	if list := childOfKind(node, "expression_list"); list != nil {
		var err error
		args, err = ctx.parseExpressionList(list)
		if err != nil {
			return nil, err
		}
	} else if expr := firstNamedChild(node); expr != nil {
		// Single-value returns may be left unwrapped.
		value, err := ctx.parseExpression(expr)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	stmt := ast.NewReturnStatement(args)
	annotateSpan(stmt, node)
	return stmt, nil
}

func (ctx *parseContext) parseIf(node *sitter.Node) (ast.Statement, error) {
	cond, err := ctx.parseExpression(node.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body, err := ctx.parseBlock(field(node, "consequence", "block"))
	if err != nil {
		return nil, err
	}
	first := ast.NewIfClause(cond, body)
	annotateSpan(first, node)
	clauses := []ast.Clause{first}

	for _, child := range namedChildren(node) {
		switch child.Kind() {
		case "elseif_statement":
			cond, err := ctx.parseExpression(child.ChildByFieldName("condition"))
			if err != nil {
				return nil, wrapParseError(child, err)
			}
			body, err := ctx.parseBlock(field(child, "consequence", "block"))
			if err != nil {
				return nil, err
			}
			clause := ast.NewElseifClause(cond, body)
			annotateSpan(clause, child)
			clauses = append(clauses, clause)
		case "else_statement":
			body, err := ctx.parseBlock(field(child, "body", "block"))
			if err != nil {
				return nil, err
			}
			clause := ast.NewElseClause(body)
			annotateSpan(clause, child)
			clauses = append(clauses, clause)
		}
	}

	stmt := ast.NewIfStatement(clauses)
	annotateSpan(stmt, node)
	return stmt, nil
}

// parseLocal handles `local a, b <const> = ...`. The grammar wraps an
// initialized declaration in an assignment_statement.
func (ctx *parseContext) parseLocal(node *sitter.Node) (ast.Statement, error) {
	target := node
	if assign := childOfKind(node, "assignment_statement"); assign != nil {
		target = assign
	}
	// Names may sit directly under the declaration or inside a list node.
	vars, err := ctx.parseNameList(target)
	if err != nil {
		return nil, err
	}
	var init []ast.Expression
	for _, child := range namedChildren(target) {
		switch child.Kind() {
		case "variable_list", "attribute_name_list":
			names, err := ctx.parseNameList(child)
			if err != nil {
				return nil, err
			}
			vars = append(vars, names...)
		case "expression_list":
			init, err = ctx.parseExpressionList(child)
			if err != nil {
				return nil, err
			}
		}
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("parser: local declaration without names")
	}
	stmt := ast.NewLocalStatement(vars, init)
	annotateSpan(stmt, node)
	return stmt, nil
}

// parseNameList reads identifiers, attaching each <attrib> to the name
// before it.
func (ctx *parseContext) parseNameList(node *sitter.Node) ([]*ast.Identifier, error) {
	var names []*ast.Identifier
	for _, child := range namedChildren(node) {
		switch child.Kind() {
		case "identifier":
			names = append(names, ctx.parseIdentifier(child))
		case "attribute":
			if len(names) == 0 {
				return nil, fmt.Errorf("parser: attribute without a name")
			}
			attr := strings.Trim(strings.TrimSpace(ctx.text(child)), "<> \t")
			names[len(names)-1].Attribute = attr
		}
	}
	return names, nil
}

func (ctx *parseContext) parseAssignment(node *sitter.Node) (ast.Statement, error) {
	var (
		vars []ast.Expression
		init []ast.Expression
		err  error
	)
	for _, child := range namedChildren(node) {
		switch child.Kind() {
		case "variable_list":
			vars, err = ctx.parseExpressionList(child)
		case "expression_list":
			init, err = ctx.parseExpressionList(child)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("parser: assignment without targets")
	}
	stmt := ast.NewAssignmentStatement(vars, init)
	annotateSpan(stmt, node)
	return stmt, nil
}

func (ctx *parseContext) parseFunctionDeclaration(node *sitter.Node, isLocal bool) (ast.Statement, error) {
	nameNode := field(node, "name", "identifier")
	if nameNode == nil {
		return nil, fmt.Errorf("parser: function declaration without a name")
	}
	var name ast.Expression
	if nameNode.Kind() == "identifier" {
		name = ctx.parseIdentifier(nameNode)
	} else {
		name = unsupported(ast.NodeMemberExpression, nameNode, ctx.source)
	}
	fn, err := ctx.parseFunctionBody(node, name, isLocal)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// parseFunctionBody reads the parameters and body shared by declarations
// and function expressions.
func (ctx *parseContext) parseFunctionBody(node *sitter.Node, name ast.Expression, isLocal bool) (*ast.FunctionDeclaration, error) {
	var params []*ast.Identifier
	isVararg := false
	for _, child := range namedChildren(field(node, "parameters", "parameters")) {
		switch child.Kind() {
		case "identifier":
			params = append(params, ctx.parseIdentifier(child))
		case "name_list":
			names, err := ctx.parseNameList(child)
			if err != nil {
				return nil, err
			}
			params = append(params, names...)
		case "vararg_expression":
			isVararg = true
		}
	}
	body, err := ctx.parseBlock(field(node, "body", "block"))
	if err != nil {
		return nil, err
	}
	fn := ast.NewFunctionDeclaration(name, isLocal, params, body)
	fn.IsVararg = isVararg
	annotateSpan(fn, node)
	return fn, nil
}
