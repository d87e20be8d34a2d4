package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"character-mcp-server/internal/api"
	"character-mcp-server/internal/character"
	"character-mcp-server/internal/config"
	"character-mcp-server/internal/logger"
	"character-mcp-server/internal/mcp"
	"character-mcp-server/internal/session"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	host       string
	port       int
	authToken  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "character-mcp-server",
	Short: "MCP server providing character information lookup over HTTP + SSE",
	RunE:  runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.DefaultConfig()
		fmt.Printf("%s %s\n", cfg.Name, cfg.Version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file (yaml or json)")
	rootCmd.Flags().StringVar(&host, "host", "", "Host to listen on")
	rootCmd.Flags().IntVar(&port, "port", 0, "Port to listen on")
	rootCmd.Flags().StringVar(&authToken, "token", "", "Bearer token required on protected endpoints")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Command line flags override file and environment
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("token") {
		cfg.Auth.Token = authToken
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is the normal case
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger.Setup(cfg.LogLevel)

	mcpServer, err := mcp.NewServer(mcp.NewConfigFromUnified(cfg), character.DefaultFactSheet())
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	sessions := session.NewRegistry()
	router := api.SetupRouter(cfg, mcpServer, sessions)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"addr":    cfg.Server.Addr(),
		"server":  cfg.Name,
		"version": cfg.Version,
	}).Info("starting MCP server")
	log.Infof("SSE endpoint:     http://%s/sse", cfg.Server.Addr())
	log.Infof("Message endpoint: http://%s/messages", cfg.Server.Addr())
	log.Infof("Health check:     http://%s/health", cfg.Server.Addr())
	if cfg.Auth.Enabled() {
		log.Info("Bearer authentication enabled (health check is public)")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("received shutdown signal, shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	log.Info("MCP server shutdown complete")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
