package configuration

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"pricehawk/internal/logger"
)

const (
	// Fallback when neither the config file nor PRICEHAWK_API_URL names the
	// backend, matching the backend's development address.
	defaultAPIBaseURL = "http://localhost:5000/api"

	envAPIBaseURL = "PRICEHAWK_API_URL"
)

type Config struct {
	APIBaseURL        string
	HTTPTimeout       time.Duration
	LogLevel          logger.Level
	LogToFile         bool
	CredentialFileDir string
}

type tomlConfig struct {
	APIBaseURL        string `toml:"api_base_url"`
	HTTPTimeout       string `toml:"http_timeout"`
	LogLevel          string `toml:"log_level"`
	LogToFile         bool   `toml:"log_to_file"`
	CredentialFileDir string `toml:"credential_file_dir"`
}

// GetConfig reads the optional TOML config at path, then applies defaults and
// the PRICEHAWK_API_URL environment override.
func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	if tc.APIBaseURL == "" {
		tc.APIBaseURL = defaultAPIBaseURL
	}
	if envURL := os.Getenv(envAPIBaseURL); envURL != "" {
		tc.APIBaseURL = envURL
	}

	if tc.HTTPTimeout == "" {
		tc.HTTPTimeout = "15s"
	}
	httpTimeout, err := time.ParseDuration(tc.HTTPTimeout)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse http_timeout: %s", tc.HTTPTimeout)
	}
	if httpTimeout <= 0 {
		return nil, errors.Errorf("http_timeout must be positive, got: %v", httpTimeout)
	}

	if tc.LogLevel == "" {
		tc.LogLevel = "INFO"
	}
	logLevel, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log_level: %s", tc.LogLevel)
	}

	if tc.CredentialFileDir == "" {
		tc.CredentialFileDir = "~/.config/pricehawk/credentials"
	}

	return &Config{
		APIBaseURL:        tc.APIBaseURL,
		HTTPTimeout:       httpTimeout,
		LogLevel:          logLevel,
		LogToFile:         tc.LogToFile,
		CredentialFileDir: tc.CredentialFileDir,
	}, nil
}
