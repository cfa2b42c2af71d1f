package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/parser"
)

// Program is a parsed Lua source file.
type Program struct {
	Path   string
	Source []byte
	Chunk  *ast.Chunk
}

// Loader reads Lua files and parses them into chunks.
type Loader struct {
	parser *parser.ChunkParser
}

// NewLoader constructs a loader with its own tree-sitter parser.
func NewLoader() (*Loader, error) {
	cp, err := parser.NewChunkParser()
	if err != nil {
		return nil, err
	}
	return &Loader{parser: cp}, nil
}

// Close releases parser resources.
func (l *Loader) Close() {
	if l == nil || l.parser == nil {
		return
	}
	l.parser.Close()
	l.parser = nil
}

// Load reads and parses the file at path.
func (l *Loader) Load(path string) (*Program, error) {
	if l == nil || l.parser == nil {
		return nil, fmt.Errorf("driver: loader closed")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("driver: resolve %s: %w", path, err)
	}
	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	chunk, err := l.LoadSource(source)
	if err != nil {
		return nil, fmt.Errorf("driver: parse %s: %w", path, err)
	}
	return &Program{Path: abs, Source: source, Chunk: chunk}, nil
}

// LoadSource parses source that did not come from a file.
func (l *Loader) LoadSource(source []byte) (*ast.Chunk, error) {
	if l == nil || l.parser == nil {
		return nil, fmt.Errorf("driver: loader closed")
	}
	return l.parser.ParseChunk(source)
}
