package mcp

import (
	"character-mcp-server/internal/config"
)

// Config holds the settings the MCP protocol layer needs from the unified
// application configuration.
type Config struct {
	// Server information sent during the MCP handshake
	Name        string
	Version     string
	Description string
}

// NewConfigFromUnified creates an MCP Config from the unified config
func NewConfigFromUnified(cfg *config.Config) *Config {
	return &Config{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
	}
}

// DefaultConfig returns a default MCP configuration for testing
func DefaultConfig() *Config {
	return &Config{
		Name:        "character-mcp-server",
		Version:     "1.0.0",
		Description: "MCP server providing character information lookup",
	}
}
