package ast

import (
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON keeps numeric literals dumpable when the value overflowed to
// infinity (`1e999`); encoding/json rejects non-finite floats.
func (lit *NumericLiteral) MarshalJSON() ([]byte, error) {
	if lit == nil {
		return []byte("null"), nil
	}
	value := json.RawMessage("null")
	if !math.IsInf(lit.Value, 0) && !math.IsNaN(lit.Value) {
		value = json.RawMessage(strconv.FormatFloat(lit.Value, 'g', -1, 64))
	}
	payload := struct {
		Type  NodeType        `json:"type"`
		Value json.RawMessage `json:"value"`
		Raw   string          `json:"raw"`
	}{
		Type:  lit.Type,
		Value: value,
		Raw:   lit.Raw,
	}
	return json.Marshal(payload)
}
