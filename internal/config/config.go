package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds the complete application configuration
type Config struct {
	// Application information
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// HTTP server configuration
	Server ServerConfig `yaml:"server" json:"server"`

	// Authentication configuration
	Auth AuthConfig `yaml:"auth,omitempty" json:"auth,omitempty"`

	// SSE transport configuration
	SSE SSEConfig `yaml:"sse,omitempty" json:"sse,omitempty"`

	// Logging configuration
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// Addr returns the listen address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthConfig holds Bearer token authentication configuration.
// Authentication is enabled whenever Token is non-empty; paths listed in
// PublicPaths are served without a token.
type AuthConfig struct {
	Token       string   `yaml:"token,omitempty" json:"token,omitempty"`
	PublicPaths []string `yaml:"public_paths,omitempty" json:"public_paths,omitempty"`
}

// Enabled reports whether Bearer authentication is active
func (a AuthConfig) Enabled() bool {
	return a.Token != ""
}

// SSEConfig holds SSE stream tuning
type SSEConfig struct {
	// Seconds between keep-alive comment frames on idle streams; 0 disables
	KeepAliveSeconds int `yaml:"keep_alive_seconds,omitempty" json:"keep_alive_seconds,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Name:        "character-mcp-server",
		Version:     "1.0.0",
		Description: "MCP server providing character information lookup",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Auth: AuthConfig{
			Token:       "fz-test-123456",
			PublicPaths: []string{"/health"},
		},
		SSE: SSEConfig{
			KeepAliveSeconds: 30,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	// Read file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse based on file extension
	config := DefaultConfig()
	ext := filepath.Ext(configPath)

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, configPath string) error {
	// Validate configuration first
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal based on file extension
	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML config: %w", err)
		}
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides configuration from environment variables. PORT follows
// the Cloud Run convention; AUTH_TOKEN replaces the configured Bearer token.
func (c *Config) ApplyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %q", port)
		}
		c.Server.Port = p
	}
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		c.Auth.Token = token
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("server name is required")
	}

	if c.Version == "" {
		return fmt.Errorf("server version is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.SSE.KeepAliveSeconds < 0 {
		return fmt.Errorf("keep_alive_seconds must not be negative")
	}

	return nil
}
