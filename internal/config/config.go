package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level finsight.yaml configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	State   StateConfig   `yaml:"state"`
	Display DisplayConfig `yaml:"display"`
}

// APIConfig points the client at the backend.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	TokenFile string `yaml:"token_file,omitempty"` // bearer token, one line
}

// StateConfig controls where local client state (activity log, exports) goes.
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// DisplayConfig controls output formatting.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// Load reads a finsight.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new setup.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8000",
			TokenFile: ".finsight-token",
		},
		State: StateConfig{
			Dir: ".finsight",
		},
		Display: DisplayConfig{
			Currency: "USD",
		},
	}
}

// ResolveBaseURL returns the backend base URL, honoring the FINSIGHT_API_URL
// environment override.
func (c *Config) ResolveBaseURL() string {
	if v, ok := os.LookupEnv("FINSIGHT_API_URL"); ok && v != "" {
		return v
	}
	return c.API.BaseURL
}

// ResolveToken returns the bearer token: FINSIGHT_TOKEN when set, else the
// contents of the configured token file. The token itself is opaque.
func (c *Config) ResolveToken() (string, error) {
	if v, ok := os.LookupEnv("FINSIGHT_TOKEN"); ok && v != "" {
		return v, nil
	}
	if c.API.TokenFile == "" {
		return "", fmt.Errorf("no token: set FINSIGHT_TOKEN or api.token_file")
	}
	data, err := os.ReadFile(c.API.TokenFile)
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", c.API.TokenFile)
	}
	return token, nil
}
