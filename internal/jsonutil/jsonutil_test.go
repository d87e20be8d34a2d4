package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPretty_Map(t *testing.T) {
	out := Pretty(map[string]interface{}{"name": "Superman"})
	assert.JSONEq(t, `{"name":"Superman"}`, out)
	assert.Contains(t, out, "\n", "output should be indented")
}

func TestPretty_UnmarshalableFallsBack(t *testing.T) {
	// Channels cannot be marshaled; the fmt fallback still yields a string
	out := Pretty(make(chan int))
	assert.NotEmpty(t, out)
}

func TestCompact_SingleLine(t *testing.T) {
	out := Compact(map[string]interface{}{"powers": []string{"Flight"}})
	assert.JSONEq(t, `{"powers":["Flight"]}`, out)
	assert.NotContains(t, out, "\n")
}
