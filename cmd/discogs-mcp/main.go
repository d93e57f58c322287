package main

import (
	"flag"
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/catalog"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/config"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/discogs"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/mcp"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

// loadConfig loads configuration from a TOML file with defaults and env overrides.
// A missing file is not an error; defaults and DISCOGS_* variables still apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return config.LoadFromFiles(path)
		}
	}
	return config.LoadFromFiles()
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "discogs-server.toml", "Path to config file")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Load version
	config.LoadVersionFromFile()

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := discogs.NewClient(cfg.Discogs)
	if !client.HasToken() {
		logger.Warn().Msg("no Discogs token configured, authenticated tools will return errors")
	}

	toolList, err := catalog.Build(client)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to build tool catalog")
		os.Exit(1)
	}

	registry, err := tools.NewRegistry(toolList...)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to build tool registry")
		os.Exit(1)
	}

	handler := mcp.NewHandler(cfg.Server.Name, registry, logger)

	if *stdio {
		// Stdio transport reads stdin and writes stdout
		if err := mcpserver.ServeStdio(handler.Server()); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := "3003"
	if p := os.Getenv("DISCOGS_MCP_PORT"); p != "" {
		port = p
	}

	// Streamable HTTP transport on the configured port
	logger.Info().
		Str("port", port).
		Int("tools", registry.Len()).
		Msg("starting MCP streamable HTTP")

	if err := handler.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
