package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func IDs(names ...string) []*Identifier {
	var ids []*Identifier
	for _, name := range names {
		ids = append(ids, NewIdentifier(name))
	}
	return ids
}

// Str builds a double-quoted string literal for value. The value is used
// verbatim between the quotes.
func Str(value string) *StringLiteral {
	return NewStringLiteral(`"` + value + `"`)
}

func LongStr(raw, value string) *StringLiteral {
	lit := NewStringLiteral(raw)
	lit.Value = value
	return lit
}

func Num(value float64) *NumericLiteral {
	return NewNumericLiteral(value, "")
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

// Expression helpers.

func Call(name string, args ...Expression) *CallExpression {
	return NewCallExpression(ID(name), args)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Logic(operator string, left, right Expression) *LogicalExpression {
	return NewLogicalExpression(operator, left, right)
}

func Un(operator string, arg Expression) *UnaryExpression {
	return NewUnaryExpression(operator, arg)
}

func Exprs(values ...Expression) []Expression {
	return values
}

// Statement helpers.

func CallStmt(name string, args ...Expression) *CallStatement {
	return NewCallStatement(Call(name, args...))
}

func Ret(args ...Expression) *ReturnStatement {
	return NewReturnStatement(args)
}

func Local(names []string, init ...Expression) *LocalStatement {
	return NewLocalStatement(IDs(names...), init)
}

func Assign(names []string, init ...Expression) *AssignmentStatement {
	targets := make([]Expression, 0, len(names))
	for _, name := range names {
		targets = append(targets, ID(name))
	}
	return NewAssignmentStatement(targets, init)
}

func If(clauses ...Clause) *IfStatement {
	return NewIfStatement(clauses)
}

func IfC(condition Expression, body ...Statement) *IfClause {
	return NewIfClause(condition, body)
}

func ElseifC(condition Expression, body ...Statement) *ElseifClause {
	return NewElseifClause(condition, body)
}

func ElseC(body ...Statement) *ElseClause {
	return NewElseClause(body)
}

// Fn declares a global function.
func Fn(name string, params []string, body ...Statement) *FunctionDeclaration {
	return NewFunctionDeclaration(ID(name), false, IDs(params...), body)
}

// LocalFn declares a local function.
func LocalFn(name string, params []string, body ...Statement) *FunctionDeclaration {
	return NewFunctionDeclaration(ID(name), true, IDs(params...), body)
}

// Lambda builds an anonymous function expression.
func Lambda(params []string, body ...Statement) *FunctionDeclaration {
	return NewFunctionDeclaration(nil, false, IDs(params...), body)
}

func Names(names ...string) []string {
	return names
}

func Mod(body ...Statement) *Chunk {
	return NewChunk(body)
}
