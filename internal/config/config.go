package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// GitHub
	GitHubToken     string
	GitHubAPIURL    string // empty means https://api.github.com/
	UpstreamTimeout time.Duration

	// API Server
	APIPort string
	APIHost string

	// CLI
	APIEndpoint string
}

// fileConfig is the YAML shape accepted by LoadFile
type fileConfig struct {
	GitHub struct {
		Token   string `yaml:"token"`
		APIURL  string `yaml:"api_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"github"`
	API struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"api"`
}

const defaultUpstreamTimeout = 10 * time.Second

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeout, err := parseDuration("UPSTREAM_TIMEOUT", getEnv("UPSTREAM_TIMEOUT", ""), defaultUpstreamTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		GitHubToken:     getEnv("GITHUB_TOKEN", ""),
		GitHubAPIURL:    getEnv("GITHUB_API_URL", ""),
		UpstreamTimeout: timeout,
		APIPort:         getEnv("API_PORT", "8080"),
		APIHost:         getEnv("API_HOST", "localhost"),
		APIEndpoint:     getEnv("API_ENDPOINT", "http://localhost:8080"),
	}, nil
}

// LoadFile loads a YAML config file and overlays the environment on top of it.
// Environment variables take precedence over values from the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &ConfigError{Field: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if os.Getenv("GITHUB_TOKEN") == "" && fc.GitHub.Token != "" {
		cfg.GitHubToken = fc.GitHub.Token
	}
	if os.Getenv("GITHUB_API_URL") == "" && fc.GitHub.APIURL != "" {
		cfg.GitHubAPIURL = fc.GitHub.APIURL
	}
	if os.Getenv("UPSTREAM_TIMEOUT") == "" && fc.GitHub.Timeout != "" {
		cfg.UpstreamTimeout, err = parseDuration("github.timeout", fc.GitHub.Timeout, defaultUpstreamTimeout)
		if err != nil {
			return nil, err
		}
	}
	if os.Getenv("API_HOST") == "" && fc.API.Host != "" {
		cfg.APIHost = fc.API.Host
	}
	if os.Getenv("API_PORT") == "" && fc.API.Port != "" {
		cfg.APIPort = fc.API.Port
	}
	if os.Getenv("API_ENDPOINT") == "" && fc.API.Endpoint != "" {
		cfg.APIEndpoint = fc.API.Endpoint
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(field, value string, defaultValue time.Duration) (time.Duration, error) {
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &ConfigError{Field: field, Message: fmt.Sprintf("invalid duration %q", value)}
	}
	return d, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}
	if c.UpstreamTimeout <= 0 {
		return &ConfigError{Field: "UPSTREAM_TIMEOUT", Message: "must be positive"}
	}
	return nil
}

// Addr returns the host:port the API server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.APIHost, c.APIPort)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
