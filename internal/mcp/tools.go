// Package mcp binds the character fact sheet to the MCP protocol layer.
package mcp

import (
	"context"

	"character-mcp-server/internal/character"
	"character-mcp-server/internal/jsonutil"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolGetCharacterInfo is the stable identifier callers use to invoke the
// character lookup tool.
const ToolGetCharacterInfo = "get_character_info"

// ToolGetCharacterInfoDescription is the human-readable tool description
// advertised to clients.
const ToolGetCharacterInfoDescription = "Get information about Superman. " +
	"Optionally narrow the result with a category: 'all' (default), 'basic', " +
	"'powers', 'origin' or 'weaknesses'. Unrecognized categories return the " +
	"full fact sheet."

// ToolManager manages the MCP tools exposed by this server
type ToolManager struct {
	facts  *character.FactSheet
	config *Config
}

// NewToolManager creates a new tool manager
func NewToolManager(facts *character.FactSheet, config *Config) *ToolManager {
	return &ToolManager{
		facts:  facts,
		config: config,
	}
}

// RegisterTools registers all available tools with the MCP server
func (tm *ToolManager) RegisterTools(s *server.MCPServer) error {
	getCharacterInfoTool := mcp.NewTool(ToolGetCharacterInfo,
		mcp.WithDescription(ToolGetCharacterInfoDescription),
		mcp.WithString("category",
			mcp.Description("Which subset of the fact sheet to return (defaults to 'all')"),
			mcp.Enum(character.Categories()...),
		),
	)
	s.AddTool(getCharacterInfoTool, tm.handleGetCharacterInfoTool)

	return nil
}

func (tm *ToolManager) handleGetCharacterInfoTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := character.ParseCategory(request.GetString("category", ""))

	projection := tm.facts.Project(category)

	return mcp.NewToolResultText(jsonutil.Pretty(projection)), nil
}

// NewServer builds the MCP protocol server with the character tool
// registered. The returned server dispatches parsed protocol messages;
// transports deliver raw bodies to it via HandleMessage.
func NewServer(cfg *Config, facts *character.FactSheet) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
	)

	toolManager := NewToolManager(facts, cfg)
	if err := toolManager.RegisterTools(s); err != nil {
		return nil, err
	}

	return s, nil
}
