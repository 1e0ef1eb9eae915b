package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_API_URL", "UPSTREAM_TIMEOUT", "API_HOST", "API_PORT", "API_ENDPOINT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.GitHubToken)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, "http://localhost:8080", cfg.APIEndpoint)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "localhost:9090", cfg.Addr())
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := Load()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "UPSTREAM_TIMEOUT", cfgErr.Field)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "7000")

	path := filepath.Join(t.TempDir(), "advisor.yaml")
	content := `
github:
  token: from-file
  api_url: https://github.example.com/api/v3/
  timeout: 3s
api:
  host: 0.0.0.0
  port: "9999"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.GitHubToken)
	assert.Equal(t, "https://github.example.com/api/v3/", cfg.GitHubAPIURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	// env wins over the file
	assert.Equal(t, "0.0.0.0:7000", cfg.Addr())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "valid", cfg: Config{GitHubToken: "t", UpstreamTimeout: time.Second}},
		{name: "missing token", cfg: Config{UpstreamTimeout: time.Second}, field: "GITHUB_TOKEN"},
		{name: "zero timeout", cfg: Config{GitHubToken: "t"}, field: "UPSTREAM_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
