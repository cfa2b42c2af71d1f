package compiler

import (
	"fmt"
	"sort"
)

// scopeFrame is one lexical region. Parent is an index into the tracker's
// frame arena; the chunk frame has parent -1. Locals maps each Lua name to
// the JavaScript binding it is emitted under.
type scopeFrame struct {
	parent int
	locals map[string]string
}

// scopeTracker records which names are locals while the generator walks a
// chunk. Frames are pushed and popped in step with the recursion, so the
// arena always holds exactly the live chain.
type scopeTracker struct {
	frames  []scopeFrame
	current int
	renamed int
}

func newScopeTracker() *scopeTracker {
	return &scopeTracker{current: -1}
}

func (s *scopeTracker) enter() {
	s.frames = append(s.frames, scopeFrame{
		parent: s.current,
		locals: make(map[string]string),
	})
	s.current = len(s.frames) - 1
}

// exit pops the current frame. Popping the chunk frame means the generator
// lost track of its own nesting, so it panics instead of returning an error.
func (s *scopeTracker) exit() {
	if s.current <= 0 {
		panic("compiler: scope exit would pop the chunk frame")
	}
	parent := s.frames[s.current].parent
	s.frames = s.frames[:s.current]
	s.current = parent
}

// declareLocal binds names in the current frame. A name already declared in
// this frame keeps its binding. A name that shadows a local of an enclosing
// frame gets a numbered binding, since a JavaScript block would otherwise
// hide the outer variable from reads that precede the declaration.
func (s *scopeTracker) declareLocal(names ...string) {
	if s.current < 0 {
		panic("compiler: declaration outside of any scope")
	}
	frame := s.frames[s.current]
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := frame.locals[name]; ok {
			continue
		}
		binding := jsName(name)
		if s.isLocal(name) {
			s.renamed++
			binding = fmt.Sprintf("%s$%d", binding, s.renamed)
		}
		frame.locals[name] = binding
	}
}

// binding resolves name to the JavaScript binding of the nearest local.
func (s *scopeTracker) binding(name string) (string, bool) {
	for idx := s.current; idx >= 0; idx = s.frames[idx].parent {
		if b, ok := s.frames[idx].locals[name]; ok {
			return b, true
		}
	}
	return "", false
}

// isLocal walks from the current frame to the chunk frame.
func (s *scopeTracker) isLocal(name string) bool {
	_, ok := s.binding(name)
	return ok
}

func (s *scopeTracker) isLocalInCurrentFrame(name string) bool {
	if s.current < 0 {
		return false
	}
	_, ok := s.frames[s.current].locals[name]
	return ok
}

func (s *scopeTracker) depth() int {
	return len(s.frames)
}

// snapshot lists each live frame's locals, sorted, chunk frame first.
func (s *scopeTracker) snapshot() [][]string {
	out := make([][]string, 0, len(s.frames))
	for _, frame := range s.frames {
		names := make([]string, 0, len(frame.locals))
		for name := range frame.locals {
			names = append(names, name)
		}
		sort.Strings(names)
		out = append(out, names)
	}
	return out
}

type scopeMark struct {
	depth  int
	locals map[string]string
}

// mark captures the current frame so a later rollback can undo everything
// declared after it.
func (s *scopeTracker) mark() scopeMark {
	m := scopeMark{depth: len(s.frames), locals: make(map[string]string)}
	if s.current >= 0 {
		for name, binding := range s.frames[s.current].locals {
			m.locals[name] = binding
		}
	}
	return m
}

func (s *scopeTracker) rollback(m scopeMark) {
	if m.depth <= 0 || m.depth > len(s.frames) {
		return
	}
	s.frames = s.frames[:m.depth]
	s.current = m.depth - 1
	s.frames[s.current].locals = m.locals
}
