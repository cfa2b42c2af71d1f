package compiler

import (
	"fmt"

	"luajs/transpiler-go/pkg/ast"
)

// UnsupportedNodeKindError reports a node whose category or concrete kind has
// no translation.
type UnsupportedNodeKindError struct {
	Kind ast.NodeType
	Span ast.Span
}

func (e *UnsupportedNodeKindError) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("compiler: unsupported node kind %s", e.Kind)
	}
	return fmt.Sprintf("compiler: %s: unsupported node kind %s", e.Span, e.Kind)
}

// UnsupportedFeatureError reports a recognized construct whose shape is
// outside what the translator handles, such as returning several values.
type UnsupportedFeatureError struct {
	Feature string
	Span    ast.Span
}

func (e *UnsupportedFeatureError) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("compiler: unsupported feature: %s", e.Feature)
	}
	return fmt.Sprintf("compiler: %s: unsupported feature: %s", e.Span, e.Feature)
}

func unsupportedKind(node ast.Node) error {
	if node == nil {
		return &UnsupportedNodeKindError{Kind: "<nil>"}
	}
	return &UnsupportedNodeKindError{Kind: node.NodeType(), Span: node.Span()}
}

func unsupportedFeature(node ast.Node, feature string) error {
	err := &UnsupportedFeatureError{Feature: feature}
	if node != nil {
		err.Span = node.Span()
	}
	return err
}
