package parser

import (
	"encoding/json"
	"reflect"
	"testing"

	"luajs/transpiler-go/pkg/ast"
)

func parseSource(t testing.TB, source string) *ast.Chunk {
	t.Helper()
	p, err := NewChunkParser()
	if err != nil {
		t.Fatalf("NewChunkParser error: %v", err)
	}
	defer p.Close()
	chunk, err := p.ParseChunk([]byte(source))
	if err != nil {
		t.Fatalf("ParseChunk error: %v", err)
	}
	return chunk
}

// assertChunksEqual compares through JSON so spans are ignored.
func assertChunksEqual(t testing.TB, expected, actual *ast.Chunk) {
	t.Helper()
	wantJSON, _ := json.Marshal(expected)
	gotJSON, _ := json.Marshal(actual)
	var wantAny, gotAny any
	_ = json.Unmarshal(wantJSON, &wantAny)
	_ = json.Unmarshal(gotJSON, &gotAny)
	if reflect.DeepEqual(wantAny, gotAny) {
		return
	}
	wantPretty, _ := json.MarshalIndent(wantAny, "", "  ")
	gotPretty, _ := json.MarshalIndent(gotAny, "", "  ")
	t.Fatalf("chunk mismatch\nexpected: %s\n   actual: %s", wantPretty, gotPretty)
}

func num(value float64, raw string) *ast.NumericLiteral {
	return ast.NewNumericLiteral(value, raw)
}

func checkSpan(t testing.TB, label string, span ast.Span, startLine, startCol int) {
	t.Helper()
	if span.Start.Line != startLine || span.Start.Column != startCol {
		t.Fatalf("%s start span mismatch: got (%d,%d), want (%d,%d)", label, span.Start.Line, span.Start.Column, startLine, startCol)
	}
}
