package ast

import "strings"

type NodeType string

const (
	NodeChunk               NodeType = "Chunk"
	NodeIdentifier          NodeType = "Identifier"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeNumericLiteral      NodeType = "NumericLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodeNilLiteral          NodeType = "NilLiteral"
	NodeCallStatement       NodeType = "CallStatement"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeIfStatement         NodeType = "IfStatement"
	NodeLocalStatement      NodeType = "LocalStatement"
	NodeAssignmentStatement NodeType = "AssignmentStatement"
	NodeCallExpression      NodeType = "CallExpression"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeLogicalExpression   NodeType = "LogicalExpression"
	NodeUnaryExpression     NodeType = "UnaryExpression"
	NodeFunctionDeclaration NodeType = "FunctionDeclaration"
	NodeIfClause            NodeType = "IfClause"
	NodeElseifClause        NodeType = "ElseifClause"
	NodeElseClause          NodeType = "ElseClause"
)

// Kinds of Lua constructs the parser recognizes but the translator does not cover.
// They travel through the tree as *Unsupported nodes.
const (
	NodeWhileStatement             NodeType = "WhileStatement"
	NodeRepeatStatement            NodeType = "RepeatStatement"
	NodeDoStatement                NodeType = "DoStatement"
	NodeForNumericStatement        NodeType = "ForNumericStatement"
	NodeForGenericStatement        NodeType = "ForGenericStatement"
	NodeBreakStatement             NodeType = "BreakStatement"
	NodeGotoStatement              NodeType = "GotoStatement"
	NodeLabelStatement             NodeType = "LabelStatement"
	NodeMemberExpression           NodeType = "MemberExpression"
	NodeIndexExpression            NodeType = "IndexExpression"
	NodeTableConstructorExpression NodeType = "TableConstructorExpression"
	NodeVarargLiteral              NodeType = "VarargLiteral"
)

// Category is the coarse grouping a concrete kind belongs to.
type Category string

const (
	CategoryLiteral     Category = "Literal"
	CategoryStatement   Category = "Statement"
	CategoryExpression  Category = "Expression"
	CategoryDeclaration Category = "Declaration"
	CategoryClause      Category = "Clause"
	CategoryIdentifier  Category = "Identifier"
)

// CategoryOf derives the coarse category from a kind name: it is the last
// PascalCase word of the kind ("ElseifClause" -> "Clause").
func CategoryOf(kind NodeType) Category {
	name := string(kind)
	for i := len(name) - 1; i > 0; i-- {
		if name[i] >= 'A' && name[i] <= 'Z' {
			return Category(name[i:])
		}
	}
	return Category(name)
}

type Node interface {
	NodeType() NodeType
	Category() Category
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Category() Category { return CategoryOf(n.Type) }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces. Only this package can add variants.

// Statement is anything that may appear in a body: statements proper and
// function declarations.
type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expression is anything that produces a value, including identifiers,
// literals and anonymous functions.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Clause interface {
	Node
	clauseNode()
}

type clauseMarker struct{}

func (clauseMarker) clauseNode() {}

// Chunk is the root of a parsed Lua file.
type Chunk struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewChunk(body []Statement) *Chunk {
	return &Chunk{nodeImpl: newNodeImpl(NodeChunk), Body: body}
}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
	// Attribute is the <const> or <close> tag of a local declaration name.
	Attribute string `json:"attribute,omitempty"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type StringLiteral struct {
	nodeImpl
	expressionMarker

	// Raw is the token text including its quotes or long brackets.
	Raw string `json:"raw"`
	// Value is the decoded content. It is only filled for long-bracket
	// strings; quoted strings are emitted from Raw.
	Value string `json:"value,omitempty"`
}

func NewStringLiteral(raw string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Raw: raw}
}

// IsLongBracket reports whether the literal was written as [[...]] or [=[...]=].
func (s *StringLiteral) IsLongBracket() bool {
	return strings.HasPrefix(s.Raw, "[")
}

type NumericLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
	Raw   string  `json:"raw"`
}

func NewNumericLiteral(value float64, raw string) *NumericLiteral {
	return &NumericLiteral{nodeImpl: newNodeImpl(NodeNumericLiteral), Value: value, Raw: raw}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

// Statements

type CallStatement struct {
	nodeImpl
	statementMarker

	Expression *CallExpression `json:"expression"`
}

func NewCallStatement(call *CallExpression) *CallStatement {
	return &CallStatement{nodeImpl: newNodeImpl(NodeCallStatement), Expression: call}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Arguments []Expression `json:"arguments"`
}

func NewReturnStatement(args []Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Arguments: args}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Clauses []Clause `json:"clauses"`
}

func NewIfStatement(clauses []Clause) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Clauses: clauses}
}

// LocalStatement introduces Variables as locals of the current block.
type LocalStatement struct {
	nodeImpl
	statementMarker

	Variables []*Identifier `json:"variables"`
	Init      []Expression  `json:"init"`
}

func NewLocalStatement(vars []*Identifier, init []Expression) *LocalStatement {
	return &LocalStatement{nodeImpl: newNodeImpl(NodeLocalStatement), Variables: vars, Init: init}
}

// AssignmentStatement targets are expressions so that index and member
// targets survive parsing and can be rejected by name.
type AssignmentStatement struct {
	nodeImpl
	statementMarker

	Variables []Expression `json:"variables"`
	Init      []Expression `json:"init"`
}

func NewAssignmentStatement(vars []Expression, init []Expression) *AssignmentStatement {
	return &AssignmentStatement{nodeImpl: newNodeImpl(NodeAssignmentStatement), Variables: vars, Init: init}
}

// Expressions

type CallExpression struct {
	nodeImpl
	expressionMarker

	Base      Expression   `json:"base"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(base Expression, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Base: base, Arguments: args}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// LogicalExpression holds the word-form operators "and" and "or".
type LogicalExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewLogicalExpression(operator string, left, right Expression) *LogicalExpression {
	return &LogicalExpression{nodeImpl: newNodeImpl(NodeLogicalExpression), Operator: operator, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Argument Expression `json:"argument"`
}

func NewUnaryExpression(operator string, arg Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Argument: arg}
}

// Declarations

// FunctionDeclaration covers `function f()`, `local function f()` and, with a
// nil Identifier, anonymous function expressions.
type FunctionDeclaration struct {
	nodeImpl
	statementMarker
	expressionMarker

	Identifier Expression    `json:"identifier"`
	IsLocal    bool          `json:"isLocal"`
	Parameters []*Identifier `json:"parameters"`
	IsVararg   bool          `json:"isVararg,omitempty"`
	Body       []Statement   `json:"body"`
}

func NewFunctionDeclaration(identifier Expression, isLocal bool, params []*Identifier, body []Statement) *FunctionDeclaration {
	return &FunctionDeclaration{
		nodeImpl:   newNodeImpl(NodeFunctionDeclaration),
		Identifier: identifier,
		IsLocal:    isLocal,
		Parameters: params,
		Body:       body,
	}
}

// Clauses

type IfClause struct {
	nodeImpl
	clauseMarker

	Condition Expression  `json:"condition"`
	Body      []Statement `json:"body"`
}

func NewIfClause(condition Expression, body []Statement) *IfClause {
	return &IfClause{nodeImpl: newNodeImpl(NodeIfClause), Condition: condition, Body: body}
}

type ElseifClause struct {
	nodeImpl
	clauseMarker

	Condition Expression  `json:"condition"`
	Body      []Statement `json:"body"`
}

func NewElseifClause(condition Expression, body []Statement) *ElseifClause {
	return &ElseifClause{nodeImpl: newNodeImpl(NodeElseifClause), Condition: condition, Body: body}
}

type ElseClause struct {
	nodeImpl
	clauseMarker

	Body []Statement `json:"body"`
}

func NewElseClause(body []Statement) *ElseClause {
	return &ElseClause{nodeImpl: newNodeImpl(NodeElseClause), Body: body}
}

// Unsupported stands in for a recognized Lua construct outside the
// translatable subset. It can sit anywhere a statement, expression or clause
// can, and carries the concrete kind so the rejection names it.
type Unsupported struct {
	nodeImpl
	statementMarker
	expressionMarker
	clauseMarker

	Text string `json:"text,omitempty"`
}

func NewUnsupported(kind NodeType, text string) *Unsupported {
	return &Unsupported{nodeImpl: newNodeImpl(kind), Text: text}
}

// Kinds lists every concrete kind the translator is expected to handle.
func Kinds() []NodeType {
	return []NodeType{
		NodeIdentifier,
		NodeStringLiteral,
		NodeNumericLiteral,
		NodeBooleanLiteral,
		NodeNilLiteral,
		NodeCallStatement,
		NodeReturnStatement,
		NodeIfStatement,
		NodeLocalStatement,
		NodeAssignmentStatement,
		NodeCallExpression,
		NodeBinaryExpression,
		NodeLogicalExpression,
		NodeUnaryExpression,
		NodeFunctionDeclaration,
		NodeIfClause,
		NodeElseifClause,
		NodeElseClause,
	}
}
