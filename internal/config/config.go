package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Discogs DiscogsConfig        `toml:"discogs"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
}

// DiscogsConfig contains Discogs API client settings.
type DiscogsConfig struct {
	BaseURL         string `toml:"base_url"`
	Token           string `toml:"token"`
	UserAgent       string `toml:"user_agent"`
	Timeout         string `toml:"timeout"`
	CacheTTL        string `toml:"cache_ttl"`
	CacheMaxEntries int    `toml:"cache_max_entries"`
}

// GetTimeout parses and returns the request timeout duration.
func (c *DiscogsConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetCacheTTL parses and returns the response cache TTL.
func (c *DiscogsConfig) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies DISCOGS_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("DISCOGS_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("DISCOGS_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if apiURL := os.Getenv("DISCOGS_API_URL"); apiURL != "" {
		config.Discogs.BaseURL = apiURL
	}
	if token := resolveToken(); token != "" {
		config.Discogs.Token = token
	}
	if ua := os.Getenv("DISCOGS_USER_AGENT"); ua != "" {
		config.Discogs.UserAgent = ua
	}
	if level := os.Getenv("DISCOGS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("DISCOGS_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// resolveToken checks the known token environment variables in priority order.
func resolveToken() string {
	for _, name := range []string{"DISCOGS_TOKEN", "DISCOGS_PERSONAL_ACCESS_TOKEN"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration and returns a list of issues.
// An empty list means the configuration is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}
	if strings.TrimSpace(c.Discogs.BaseURL) == "" {
		issues = append(issues, "discogs.base_url must not be empty")
	} else if _, err := url.Parse(c.Discogs.BaseURL); err != nil {
		issues = append(issues, fmt.Sprintf("discogs.base_url is not a valid URL: %v", err))
	}
	if strings.TrimSpace(c.Discogs.UserAgent) == "" {
		issues = append(issues, "discogs.user_agent must not be empty (the Discogs API requires a User-Agent header)")
	}
	if level := c.Logging.Level; level != "" {
		switch strings.ToLower(level) {
		case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		default:
			issues = append(issues, fmt.Sprintf("logging.level %q is not a recognized level", level))
		}
	}

	return issues
}
