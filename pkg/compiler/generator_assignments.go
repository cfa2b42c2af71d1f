package compiler

import (
	"fmt"
	"strings"

	"luajs/transpiler-go/pkg/ast"
	"luajs/transpiler-go/pkg/runtime"
)

// translateLocal handles `local a, b = ...`. Initializers are read before the
// new names are declared, so `local x = x` still sees the outer x.
func (g *generator) translateLocal(stmt *ast.LocalStatement) (string, error) {
	if len(stmt.Variables) == 0 {
		return "", unsupportedKind(stmt)
	}
	for _, id := range stmt.Variables {
		if id.Attribute != "" {
			g.warnf(id, "attribute <%s> on %s is ignored", id.Attribute, id.Name)
		}
	}
	if len(stmt.Variables) == 1 && len(stmt.Init) <= 1 {
		return g.translateSingleLocal(stmt)
	}

	values, err := g.translateValues(stmt.Init)
	if err != nil {
		return "", err
	}
	values = padValues(values, len(stmt.Variables))

	// A name repeated within one statement binds its last position; earlier
	// positions become holes in the pattern.
	last := make(map[string]int, len(stmt.Variables))
	for idx, id := range stmt.Variables {
		last[id.Name] = idx
	}
	var declared, fresh []string
	isFresh := make(map[string]bool, len(stmt.Variables))
	for idx, id := range stmt.Variables {
		if last[id.Name] != idx {
			continue
		}
		declared = append(declared, id.Name)
		isFresh[id.Name] = !g.scopes.isLocalInCurrentFrame(id.Name)
	}
	g.scopes.declareLocal(declared...)

	pattern := make([]string, len(stmt.Variables))
	for _, name := range declared {
		binding, _ := g.scopes.binding(name)
		pattern[last[name]] = binding
		if isFresh[name] {
			fresh = append(fresh, binding)
		}
	}

	destructure := fmt.Sprintf("[%s] = [%s]", strings.Join(pattern, ", "), strings.Join(values, ", "))
	switch len(fresh) {
	case len(declared):
		return "let " + destructure, nil
	case 0:
		return "/* let */ " + destructure, nil
	default:
		return fmt.Sprintf("let %s;\n%s", strings.Join(fresh, ", "), destructure), nil
	}
}

func (g *generator) translateSingleLocal(stmt *ast.LocalStatement) (string, error) {
	id := stmt.Variables[0]
	value := "null"
	if len(stmt.Init) == 1 {
		var err error
		value, err = g.translateValue(stmt.Init[0])
		if err != nil {
			return "", err
		}
	}
	keyword := "let"
	if g.scopes.isLocalInCurrentFrame(id.Name) {
		keyword = "/* let */"
	}
	g.scopes.declareLocal(id.Name)
	binding, _ := g.scopes.binding(id.Name)
	return fmt.Sprintf("%s %s = %s", keyword, binding, value), nil
}

// translateAssignment handles `a, b = ...`. Locals are written directly;
// globals go through the runtime context.
func (g *generator) translateAssignment(stmt *ast.AssignmentStatement) (string, error) {
	if len(stmt.Variables) == 0 {
		return "", unsupportedKind(stmt)
	}
	targets := make([]*ast.Identifier, 0, len(stmt.Variables))
	for _, target := range stmt.Variables {
		id, ok := target.(*ast.Identifier)
		if !ok {
			return "", unsupportedKind(target)
		}
		targets = append(targets, id)
	}

	if len(targets) == 1 && len(stmt.Init) <= 1 {
		value := "null"
		if len(stmt.Init) == 1 {
			var err error
			value, err = g.translateValue(stmt.Init[0])
			if err != nil {
				return "", err
			}
		}
		name := targets[0].Name
		if binding, ok := g.scopes.binding(name); ok {
			return fmt.Sprintf("%s = %s", binding, value), nil
		}
		return fmt.Sprintf("%s.%s({ %s: %s })", runtime.ContextName, runtime.MethodAssignGlobal, objectKey(name), value), nil
	}

	values, err := g.translateValues(stmt.Init)
	if err != nil {
		return "", err
	}
	values = padValues(values, len(targets))

	names := make([]string, 0, len(targets))
	var globals []string
	seen := make(map[string]struct{})
	for _, id := range targets {
		if binding, ok := g.scopes.binding(id.Name); ok {
			names = append(names, binding)
			continue
		}
		names = append(names, tempName(id.Name))
		if _, ok := seen[id.Name]; ok {
			continue
		}
		seen[id.Name] = struct{}{}
		globals = append(globals, id.Name)
	}

	destructure := fmt.Sprintf("[%s] = [%s]", strings.Join(names, ", "), strings.Join(values, ", "))
	if len(globals) == 0 {
		return destructure, nil
	}
	temps := make([]string, 0, len(globals))
	fields := make([]string, 0, len(globals))
	for _, name := range globals {
		temps = append(temps, tempName(name))
		fields = append(fields, fmt.Sprintf("%s: %s", objectKey(name), tempName(name)))
	}
	lines := []string{
		fmt.Sprintf("let %s;", strings.Join(temps, ", ")),
		destructure + ";",
		fmt.Sprintf("%s.%s({ %s });", runtime.ContextName, runtime.MethodAssignGlobal, strings.Join(fields, ", ")),
	}
	return "{\n" + strings.Join(indentLines(lines, g.opts.Indent), "\n") + "\n}", nil
}

// padValues fills missing right-hand sides with null. Surplus values are
// kept so they are still evaluated.
func padValues(values []string, n int) []string {
	for len(values) < n {
		values = append(values, "null")
	}
	return values
}
