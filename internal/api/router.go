// Package api wires the HTTP surface: the MCP SSE transport plus the
// informational endpoints.
package api

import (
	"time"

	"character-mcp-server/internal/api/handlers"
	"character-mcp-server/internal/api/middleware"
	"character-mcp-server/internal/config"
	"character-mcp-server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
)

// SetupRouter configures and returns a Gin router with all routes
func SetupRouter(cfg *config.Config, mcpServer *server.MCPServer, sessions *session.Registry) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(gin.Recovery())
	r.Use(middleware.BearerAuth(cfg.Auth.Token, cfg.Auth.PublicPaths))

	keepAlive := time.Duration(cfg.SSE.KeepAliveSeconds) * time.Second
	mcpHandler := handlers.NewMCPHandler(mcpServer, sessions, keepAlive)
	serverHandler := handlers.NewServerHandler(cfg, sessions)

	r.GET("/", serverHandler.Info)
	r.GET("/health", serverHandler.Health)
	r.GET("/sse", mcpHandler.HandleSSE)
	r.POST("/messages", mcpHandler.HandleMessage)

	return r
}
