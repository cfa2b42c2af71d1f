package ast

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestCategoryOfUsesLastWord(t *testing.T) {
	cases := map[NodeType]Category{
		NodeCallStatement:       CategoryStatement,
		NodeElseifClause:        CategoryClause,
		NodeFunctionDeclaration: CategoryDeclaration,
		NodeNilLiteral:          CategoryLiteral,
		NodeLogicalExpression:   CategoryExpression,
		NodeIdentifier:          CategoryIdentifier,
		NodeChunk:               Category("Chunk"),
		NodeVarargLiteral:       CategoryLiteral,
	}
	for kind, want := range cases {
		if got := CategoryOf(kind); got != want {
			t.Fatalf("CategoryOf(%s) = %s, want %s", kind, got, want)
		}
	}
}

func TestEveryKindHasKnownCategory(t *testing.T) {
	known := map[Category]bool{
		CategoryLiteral:     true,
		CategoryStatement:   true,
		CategoryExpression:  true,
		CategoryDeclaration: true,
		CategoryClause:      true,
		CategoryIdentifier:  true,
	}
	for _, kind := range Kinds() {
		if !known[CategoryOf(kind)] {
			t.Fatalf("kind %s maps to unknown category %s", kind, CategoryOf(kind))
		}
	}
}

func TestNodesReportCategory(t *testing.T) {
	fn := Fn("f", nil)
	if fn.Category() != CategoryDeclaration {
		t.Fatalf("function category = %s", fn.Category())
	}
	if got := NewUnsupported(NodeWhileStatement, "").Category(); got != CategoryStatement {
		t.Fatalf("while category = %s", got)
	}
}

func TestSetSpan(t *testing.T) {
	id := ID("x")
	span := Span{Start: Position{Line: 3, Column: 5}, End: Position{Line: 3, Column: 6}}
	SetSpan(id, span)
	if got := id.Span(); got != span {
		t.Fatalf("span mismatch: got %+v, want %+v", got, span)
	}
	if got := id.Span().String(); got != "3:5" {
		t.Fatalf("span string = %q", got)
	}
	SetSpan(nil, span)
}

func TestDumpWritesKindsAndChildren(t *testing.T) {
	chunk := Mod(
		Local(Names("x"), Num(1)),
		CallStmt("print", ID("x"), Str("hi")),
	)
	data, err := Dump(chunk)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump is not JSON: %v\n%s", err, data)
	}
	if decoded["type"] != "Chunk" {
		t.Fatalf("root type = %v", decoded["type"])
	}
	body, _ := decoded["body"].([]any)
	if len(body) != 2 {
		t.Fatalf("body length = %d", len(body))
	}
	first, _ := body[0].(map[string]any)
	if first["type"] != "LocalStatement" {
		t.Fatalf("first statement type = %v", first["type"])
	}
	if !strings.Contains(string(data), `"raw": "\"hi\""`) {
		t.Fatalf("expected raw string token in dump:\n%s", data)
	}
}

func TestDumpHandlesInfiniteNumbers(t *testing.T) {
	chunk := Mod(Local(Names("big"), NewNumericLiteral(math.Inf(1), "1e999")))
	data, err := Dump(chunk)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(string(data), `"value": null`) {
		t.Fatalf("expected null value for infinity:\n%s", data)
	}
}
