// Package interpreter runs translated programs. It embeds a JavaScript engine
// and binds LuaContext to a Go runtime.Globals, so the globals a program
// reads and writes through $ctx are visible to Go callers.
package interpreter
