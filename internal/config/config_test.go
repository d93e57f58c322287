package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 3002 {
		t.Errorf("expected default port 3002, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Discogs.BaseURL != "https://api.discogs.com" {
		t.Errorf("expected default base URL https://api.discogs.com, got %s", cfg.Discogs.BaseURL)
	}
	if cfg.Discogs.UserAgent == "" {
		t.Error("expected non-empty default user agent")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 3002 {
		t.Errorf("expected default port 3002, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
port = 9090
host = "127.0.0.1"

[discogs]
base_url = "http://fake-discogs:8080"
token = "file-token"
user_agent = "TestAgent/1.0"
timeout = "5s"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %s", cfg.Server.Host)
	}
	if cfg.Discogs.BaseURL != "http://fake-discogs:8080" {
		t.Errorf("expected base URL http://fake-discogs:8080, got %s", cfg.Discogs.BaseURL)
	}
	if cfg.Discogs.Token != "file-token" {
		t.Errorf("expected token file-token, got %s", cfg.Discogs.Token)
	}
	if cfg.Discogs.GetTimeout().Seconds() != 5 {
		t.Errorf("expected 5s timeout, got %v", cfg.Discogs.GetTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "partial.toml")

	// Only override port; everything else should stay default
	content := `
[server]
port = 3000
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Server.Port)
	}
	// Host should remain the default
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Discogs.BaseURL != "https://api.discogs.com" {
		t.Errorf("expected default base URL, got %s", cfg.Discogs.BaseURL)
	}
}

func TestLoadFromFiles_MultipleFiles(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	baseContent := `
[server]
port = 3000
host = "base-host"
`
	if err := os.WriteFile(base, []byte(baseContent), 0644); err != nil {
		t.Fatal(err)
	}

	override := filepath.Join(dir, "override.toml")
	overrideContent := `
[server]
port = 4000
`
	if err := os.WriteFile(override, []byte(overrideContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(base, override)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Port should be overridden by the second file
	if cfg.Server.Port != 4000 {
		t.Errorf("expected port 4000 from override, got %d", cfg.Server.Port)
	}
	// Host should come from the base file
	if cfg.Server.Host != "base-host" {
		t.Errorf("expected host base-host from base file, got %s", cfg.Server.Host)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/path.toml")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "invalid.toml")

	if err := os.WriteFile(tomlPath, []byte("this is not valid {{toml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFiles(tomlPath)
	if err == nil {
		t.Error("expected error for invalid TOML, got nil")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	t.Setenv("DISCOGS_SERVER_PORT", "9999")
	t.Setenv("DISCOGS_SERVER_HOST", "env-host")
	t.Setenv("DISCOGS_API_URL", "http://env-discogs:9000")
	t.Setenv("DISCOGS_TOKEN", "env-token")
	t.Setenv("DISCOGS_LOG_LEVEL", "error")

	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9999 {
		t.Errorf("expected env port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "env-host" {
		t.Errorf("expected env host env-host, got %s", cfg.Server.Host)
	}
	if cfg.Discogs.BaseURL != "http://env-discogs:9000" {
		t.Errorf("expected env base URL http://env-discogs:9000, got %s", cfg.Discogs.BaseURL)
	}
	if cfg.Discogs.Token != "env-token" {
		t.Errorf("expected env token env-token, got %s", cfg.Discogs.Token)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env log level error, got %s", cfg.Logging.Level)
	}
}

func TestApplyEnvOverrides_InvalidPort(t *testing.T) {
	cfg := NewDefaultConfig()

	t.Setenv("DISCOGS_SERVER_PORT", "not-a-number")

	applyEnvOverrides(cfg)

	// Port should remain default when env var is not a valid integer
	if cfg.Server.Port != 3002 {
		t.Errorf("expected default port 3002 for invalid env, got %d", cfg.Server.Port)
	}
}

func TestApplyEnvOverrides_TokenFallbackName(t *testing.T) {
	cfg := NewDefaultConfig()

	t.Setenv("DISCOGS_PERSONAL_ACCESS_TOKEN", "pat-token")

	applyEnvOverrides(cfg)

	if cfg.Discogs.Token != "pat-token" {
		t.Errorf("expected token from DISCOGS_PERSONAL_ACCESS_TOKEN, got %s", cfg.Discogs.Token)
	}
}

func TestApplyEnvOverrides_TokenPriority(t *testing.T) {
	cfg := NewDefaultConfig()

	t.Setenv("DISCOGS_TOKEN", "primary")
	t.Setenv("DISCOGS_PERSONAL_ACCESS_TOKEN", "secondary")

	applyEnvOverrides(cfg)

	if cfg.Discogs.Token != "primary" {
		t.Errorf("expected DISCOGS_TOKEN to take priority, got %s", cfg.Discogs.Token)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 7777, "flag-host")

	if cfg.Server.Port != 7777 {
		t.Errorf("expected flag port 7777, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "flag-host" {
		t.Errorf("expected flag host flag-host, got %s", cfg.Server.Host)
	}
}

func TestApplyFlagOverrides_ZeroPortNoOverride(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 0, "")

	// No override when port is 0 and host is empty
	if cfg.Server.Port != 3002 {
		t.Errorf("expected default port 3002, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
}

func TestEnvOverridesFileConfig(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
port = 3000
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DISCOGS_SERVER_PORT", "5555")

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Env should override file value
	if cfg.Server.Port != 5555 {
		t.Errorf("expected env override port 5555, got %d", cfg.Server.Port)
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := NewDefaultConfig()

	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("default config should validate, got issues: %v", issues)
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 0

	issues := cfg.Validate()
	if len(issues) == 0 {
		t.Fatal("expected validation issue for port 0")
	}
	if !strings.Contains(issues[0], "server.port") {
		t.Errorf("expected issue to mention server.port, got %q", issues[0])
	}
}

func TestValidate_EmptyUserAgent(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Discogs.UserAgent = "  "

	issues := cfg.Validate()
	found := false
	for _, issue := range issues {
		if strings.Contains(issue, "user_agent") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected user_agent issue, got %v", issues)
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Logging.Level = "verbose"

	issues := cfg.Validate()
	found := false
	for _, issue := range issues {
		if strings.Contains(issue, "logging.level") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected logging.level issue, got %v", issues)
	}
}

func TestGetCacheTTL_Default(t *testing.T) {
	c := DiscogsConfig{CacheTTL: "garbage"}
	if c.GetCacheTTL().Minutes() != 5 {
		t.Errorf("expected 5m fallback TTL, got %v", c.GetCacheTTL())
	}
}
