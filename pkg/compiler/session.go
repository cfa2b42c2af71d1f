package compiler

import (
	"fmt"
	"strings"

	"luajs/transpiler-go/pkg/ast"
)

// Session translates a program piece by piece, as a REPL does. The chunk
// frame survives between calls, so a local declared by one input is still a
// local in the next.
type Session struct {
	gen *generator
}

func NewSession(opts Options) (*Session, error) {
	opts = withDefaults(opts)
	if err := validateFormat(opts.Format); err != nil {
		return nil, err
	}
	gen := newGenerator(opts)
	gen.scopes.enter()
	return &Session{gen: gen}, nil
}

// Preamble returns the code that must run once before any translated input.
func (s *Session) Preamble() string {
	return preamble(s.gen.opts)
}

// Translate converts one input. A failed input leaves the session as it was
// before the call.
func (s *Session) Translate(chunk *ast.Chunk) (string, []string, error) {
	if chunk == nil {
		return "", nil, fmt.Errorf("compiler: missing chunk")
	}
	mark := s.gen.scopes.mark()
	s.gen.warnings = nil
	lines, err := s.gen.translateBody(chunk.Body, false)
	if err != nil {
		s.gen.scopes.rollback(mark)
		return "", nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n"), s.gen.warnings, nil
}

// Locals lists the names currently declared at chunk level.
func (s *Session) Locals() []string {
	frames := s.gen.scopes.snapshot()
	if len(frames) == 0 {
		return nil
	}
	return frames[0]
}
