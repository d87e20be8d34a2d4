package handlers

import (
	"net/http"
	"time"

	"character-mcp-server/internal/character"
	"character-mcp-server/internal/config"
	"character-mcp-server/internal/mcp"
	"character-mcp-server/internal/session"

	"github.com/gin-gonic/gin"
)

// ServerHandler serves the informational endpoints: the root description
// page and the health check.
type ServerHandler struct {
	config   *config.Config
	sessions *session.Registry
}

// NewServerHandler creates a new server info handler
func NewServerHandler(cfg *config.Config, sessions *session.Registry) *ServerHandler {
	return &ServerHandler{
		config:   cfg,
		sessions: sessions,
	}
}

// Info describes the server, its endpoints and the available tool.
// GET /
func (h *ServerHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        h.config.Name,
		"version":     h.config.Version,
		"description": h.config.Description,
		"endpoints": gin.H{
			"/":         "Server information (this page)",
			"/sse":      "SSE connection endpoint (GET) - establish an MCP connection",
			"/messages": "Message endpoint (POST) - send MCP messages for an established session",
			"/health":   "Health check endpoint (GET)",
		},
		"tools": []gin.H{
			{
				"name":        mcp.ToolGetCharacterInfo,
				"description": mcp.ToolGetCharacterInfoDescription,
				"parameters": gin.H{
					"category": gin.H{
						"type":     "string",
						"enum":     character.Categories(),
						"required": false,
						"default":  string(character.CategoryAll),
					},
				},
			},
		},
		"usage": gin.H{
			"step1": "Open an SSE connection with GET /sse",
			"step2": "Read the endpoint URL from the first SSE event",
			"step3": "POST MCP messages to that endpoint",
			"step4": "Call get_character_info with an optional category",
		},
	})
}

// Health reports process liveness and the number of open sessions.
// GET /health
func (h *ServerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"server":         h.config.Name,
		"version":        h.config.Version,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"activeSessions": h.sessions.Count(),
	})
}
