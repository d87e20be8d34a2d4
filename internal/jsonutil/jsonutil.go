// Package jsonutil provides JSON formatting helpers for tool responses.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Pretty renders a structured value as indented JSON. Values that cannot be
// marshaled fall back to their fmt representation so callers always get a
// printable string.
func Pretty(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Compact renders a structured value as single-line JSON with the same
// fallback behavior as Pretty.
func Compact(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
