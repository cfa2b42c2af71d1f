package compiler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dop251/goja/ftoa"

	"luajs/transpiler-go/pkg/ast"
)

func (g *generator) translateLiteral(node ast.Node) (string, error) {
	switch lit := node.(type) {
	case *ast.StringLiteral:
		return translateString(lit)
	case *ast.NumericLiteral:
		return formatNumber(lit.Value), nil
	case *ast.BooleanLiteral:
		return strconv.FormatBool(lit.Value), nil
	case *ast.NilLiteral:
		return "null", nil
	default:
		return "", unsupportedKind(node)
	}
}

// translateString keeps quoted strings as written. Long-bracket strings have
// no JavaScript spelling, so their content is re-quoted.
func translateString(lit *ast.StringLiteral) (string, error) {
	if !lit.IsLongBracket() {
		return lit.Raw, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(lit.Value); err != nil {
		return "", unsupportedFeature(lit, "string literal encoding")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// formatNumber renders a number the way JavaScript's Number#toString does.
func formatNumber(value float64) string {
	return string(ftoa.FToStr(value, ftoa.ModeStandard, 0, nil))
}
