package config

import "github.com/giuliogarofalo/discogs-mcp-server/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:        "Discogs MCP Server",
			Description: "Tool gateway for the Discogs music database and marketplace API",
			Host:        "0.0.0.0",
			Port:        3002,
		},
		Discogs: DiscogsConfig{
			BaseURL:         "https://api.discogs.com",
			UserAgent:       "DiscogsMCPServer/" + Version + " +https://github.com/giuliogarofalo/discogs-mcp-server",
			Timeout:         "30s",
			CacheTTL:        "5m",
			CacheMaxEntries: 256,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Format:     "text",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/discogs-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
