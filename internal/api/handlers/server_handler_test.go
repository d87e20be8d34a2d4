package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"character-mcp-server/internal/config"
	"character-mcp-server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEndpoint(t *testing.T, handle gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	c.Request = req

	handle(c)
	return w
}

func TestServerHandler_Health(t *testing.T) {
	registry := session.NewRegistry()
	h := NewServerHandler(config.DefaultConfig(), registry)

	w := getEndpoint(t, h.Health, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "character-mcp-server", body["server"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, float64(0), body["activeSessions"])
}

func TestServerHandler_Health_CountsSessions(t *testing.T) {
	registry := session.NewRegistry()
	h := NewServerHandler(config.DefaultConfig(), registry)

	a := registry.Register()
	registry.Register()

	w := getEndpoint(t, h.Health, "/health")
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["activeSessions"])

	registry.Remove(a.ID)

	w = getEndpoint(t, h.Health, "/health")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["activeSessions"])
}

func TestServerHandler_Info(t *testing.T) {
	h := NewServerHandler(config.DefaultConfig(), session.NewRegistry())

	w := getEndpoint(t, h.Info, "/")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "character-mcp-server", body["name"])
	assert.Contains(t, body, "endpoints")
	assert.Contains(t, body, "usage")

	tools, ok := body["tools"].([]interface{})
	require.True(t, ok)
	require.Len(t, tools, 1)

	tool := tools[0].(map[string]interface{})
	assert.Equal(t, "get_character_info", tool["name"])
	assert.NotEmpty(t, tool["description"])
	assert.Contains(t, tool["parameters"].(map[string]interface{}), "category")
}
