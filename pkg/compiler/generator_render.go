package compiler

import (
	"bytes"
	"fmt"
	"strings"

	"luajs/transpiler-go/pkg/runtime"
)

// render prepends the preamble to the translated top-level lines.
func (g *generator) render(body []string) string {
	var buf bytes.Buffer
	buf.WriteString(preamble(g.opts))
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	if len(body) > 0 {
		buf.WriteString(strings.Join(body, "\n"))
		buf.WriteByte('\n')
	}
	return buf.String()
}

// preamble binds the runtime context every translated program relies on.
func preamble(opts Options) string {
	var buf bytes.Buffer
	if opts.Format != FormatScript {
		fmt.Fprintf(&buf, "import { %s, %s } from '%s';\n\n", runtime.LibraryName, runtime.ContextClass, opts.RuntimeModule)
	}
	fmt.Fprintf(&buf, "const %s = new %s();\n\n", runtime.ContextName, runtime.ContextClass)
	return buf.String()
}
