package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricehawk/internal/configuration"
	"pricehawk/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	t.Setenv("PRICEHAWK_API_URL", "")

	config, err := configuration.GetConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", config.APIBaseURL)
	assert.Equal(t, 15*time.Second, config.HTTPTimeout)
	assert.Equal(t, logger.LevelInfo, config.LogLevel)
	assert.False(t, config.LogToFile)
	assert.Equal(t, "~/.config/pricehawk/credentials", config.CredentialFileDir)
}

func TestGetConfigFromFile(t *testing.T) {
	t.Setenv("PRICEHAWK_API_URL", "")
	path := writeConfig(t, `
api_base_url = "https://pricehawk.example.com/api"
http_timeout = "30s"
log_level = "DEBUG"
log_to_file = true
credential_file_dir = "/tmp/pricehawk-creds"
`)

	config, err := configuration.GetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://pricehawk.example.com/api", config.APIBaseURL)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
	assert.Equal(t, logger.LevelDebug, config.LogLevel)
	assert.True(t, config.LogToFile)
	assert.Equal(t, "/tmp/pricehawk-creds", config.CredentialFileDir)
}

func TestGetConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("PRICEHAWK_API_URL", "https://staging.example.com/api")
	path := writeConfig(t, `api_base_url = "https://pricehawk.example.com/api"`)

	config, err := configuration.GetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api", config.APIBaseURL)
}

func TestGetConfigBadTimeout(t *testing.T) {
	_, err := configuration.GetConfig(writeConfig(t, `http_timeout = "soon"`))
	assert.Error(t, err)

	_, err = configuration.GetConfig(writeConfig(t, `http_timeout = "-5s"`))
	assert.Error(t, err)
}

func TestGetConfigBadLogLevel(t *testing.T) {
	_, err := configuration.GetConfig(writeConfig(t, `log_level = "LOUD"`))
	assert.Error(t, err)
}

func TestGetConfigMalformedFile(t *testing.T) {
	_, err := configuration.GetConfig(writeConfig(t, `api_base_url = [not toml`))
	assert.Error(t, err)
}
