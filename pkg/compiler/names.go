package compiler

import "strconv"

// jsReserved holds words a JavaScript module cannot use as a binding name
// but which are ordinary identifiers in Lua.
var jsReserved = map[string]struct{}{
	"arguments": {}, "await": {}, "case": {}, "catch": {}, "class": {},
	"const": {}, "continue": {}, "debugger": {}, "default": {}, "delete": {},
	"enum": {}, "eval": {}, "export": {}, "extends": {}, "finally": {},
	"implements": {}, "import": {}, "instanceof": {}, "interface": {}, "let": {},
	"new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "static": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "try": {}, "typeof": {}, "undefined": {}, "var": {},
	"void": {}, "with": {}, "yield": {}, "NaN": {}, "Infinity": {},
}

// jsName is the binding a Lua local is emitted under. Lua identifiers never
// contain '$', so the prefixed form cannot clash with another local.
func jsName(name string) string {
	if _, ok := jsReserved[name]; ok {
		return "$" + name
	}
	return name
}

// globalKey quotes a Lua name for use as a runtime context key.
func globalKey(name string) string {
	return strconv.Quote(name)
}

// tempName is the destructuring temporary that carries a global's new value
// out of a multiple assignment.
func tempName(name string) string {
	return "$_" + name
}

// objectKey spells a Lua name as a property key in an object literal. A
// literal `__proto__: v` sets the prototype instead of defining a property,
// so that one name is written as a computed key.
func objectKey(name string) string {
	if name == "__proto__" {
		return `["__proto__"]`
	}
	return name
}
