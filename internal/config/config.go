// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultGuidelinesDir = "data"
	DefaultPort          = 8080
)

// Config represents the application configuration. It can be loaded from a
// JSON file; environment variables fill any gaps. All fields are optional:
// a missing API key or database URL puts the affected collaborator into its
// documented degraded mode instead of failing startup.
type Config struct {
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	GuidelinesDir string `json:"guidelines_dir,omitempty"` // Directory of guideline *.md documents
	JWTSecret     string `json:"jwt_secret,omitempty"`     // Bearer auth secret for the server (optional)
	Port          int    `json:"port,omitempty"`           // HTTP listen port
	Verbose       bool   `json:"verbose,omitempty"`        // Enable debug logging
}

// Load reads configuration from a JSON file. An empty path yields an empty
// config so the environment alone can drive everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// ApplyEnv fills empty fields from environment variables and applies the
// defaults.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GuidelinesDir == "" {
		c.GuidelinesDir = os.Getenv("GUIDELINES_DIR")
	}
	if c.JWTSecret == "" {
		c.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}

	if c.GuidelinesDir == "" {
		c.GuidelinesDir = DefaultGuidelinesDir
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port, got %d", c.Port)
	}
	return nil
}
