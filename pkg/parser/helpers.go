package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"luajs/transpiler-go/pkg/ast"
)

// parseContext carries the source bytes so helpers share one view of the
// file without threading arguments everywhere.
type parseContext struct {
	source []byte
}

func newParseContext(source []byte) *parseContext {
	return &parseContext{source: source}
}

func (ctx *parseContext) text(node *sitter.Node) string {
	return sliceContent(node, ctx.source)
}

func sliceContent(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := int(node.StartByte())
	end := int(node.EndByte())
	if start < 0 || end < start || end > len(source) {
		return ""
	}
	return string(source[start:end])
}

// namedChildren lists the named children of node, comments excluded.
func namedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var out []*sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || isIgnorableNode(child) {
			continue
		}
		out = append(out, child)
	}
	return out
}

func firstNamedChild(node *sitter.Node) *sitter.Node {
	children := namedChildren(node)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// childOfKind returns the first named child of the given kind.
func childOfKind(node *sitter.Node, kind string) *sitter.Node {
	for _, child := range namedChildren(node) {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// field looks a child up by field name, falling back to the first named
// child of kind when the grammar does not label it.
func field(node *sitter.Node, name, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	if child := node.ChildByFieldName(name); child != nil {
		return child
	}
	if kind == "" {
		return nil
	}
	return childOfKind(node, kind)
}

// operatorToken returns the first anonymous child, which is the operator of
// unary and binary expressions.
func operatorToken(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && !child.IsNamed() {
			return child
		}
	}
	return nil
}

// hasToken reports whether node has an anonymous child spelled token.
func hasToken(node *sitter.Node, token string) bool {
	if node == nil {
		return false
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && !child.IsNamed() && child.Kind() == token {
			return true
		}
	}
	return false
}

func isIgnorableNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case "comment", "hash_bang_line":
		return true
	default:
		return false
	}
}

func spanFromNode(node *sitter.Node) ast.Span {
	if node == nil {
		return ast.Span{}
	}
	start := node.StartPosition()
	end := node.EndPosition()
	return ast.Span{
		Start: ast.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   ast.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

func annotateSpan(node ast.Node, tsNode *sitter.Node) {
	if node == nil || tsNode == nil {
		return
	}
	ast.SetSpan(node, spanFromNode(tsNode))
}

func unsupported(kind ast.NodeType, node *sitter.Node, source []byte) *ast.Unsupported {
	u := ast.NewUnsupported(kind, sliceContent(node, source))
	annotateSpan(u, node)
	return u
}
