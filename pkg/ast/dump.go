package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dump renders the tree as indented JSON, the intermediate artifact written
// next to the translated module.
func Dump(chunk *Chunk) ([]byte, error) {
	if chunk == nil {
		return nil, fmt.Errorf("ast: nil chunk")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chunk); err != nil {
		return nil, fmt.Errorf("ast: encode: %w", err)
	}
	return buf.Bytes(), nil
}
