package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/parser/language"
)

// ChunkParser wraps a tree-sitter parser configured for Lua. It is not safe
// for concurrent use; give each goroutine its own.
type ChunkParser struct {
	parser *sitter.Parser
}

// NewChunkParser constructs a parser with the Lua language loaded.
func NewChunkParser() (*ChunkParser, error) {
	lang := language.Lua()
	if lang == nil {
		return nil, fmt.Errorf("parser: lua language not available")
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		p.Close()
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &ChunkParser{parser: p}, nil
}

// Close releases parser resources.
func (p *ChunkParser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// ParseChunk parses Lua source into the syntax tree the translator consumes.
func (p *ChunkParser) ParseChunk(source []byte) (*ast.Chunk, error) {
	if p == nil || p.parser == nil {
		return nil, fmt.Errorf("parser: nil parser")
	}

	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser: parse produced no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parser: unexpected root node")
	}
	if root.HasError() {
		return nil, syntaxError(root)
	}
	if root.Kind() != "chunk" {
		return nil, fmt.Errorf("parser: unexpected root node %q", root.Kind())
	}

	ctx := newParseContext(source)
	body, err := ctx.parseBlock(root)
	if err != nil {
		return nil, err
	}
	chunk := ast.NewChunk(body)
	annotateSpan(chunk, root)
	return chunk, nil
}

// Parse is a one-shot helper that owns its parser.
func Parse(source []byte) (*ast.Chunk, error) {
	p, err := NewChunkParser()
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ParseChunk(source)
}
