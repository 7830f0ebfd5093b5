package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/cheikh-mbacke/emailight-mobile/client"
	"github.com/cheikh-mbacke/emailight-mobile/devmode"
)

// Config holds the settings shared by the CLI and the mock backend.
// Environment variables are parsed with the EMAILIGHT_ prefix.
type Config struct {
	// Environment selects the default API root: development or production.
	Environment client.Environment `envconfig:"ENVIRONMENT" default:"development"`

	// BaseURL overrides the environment's API root when set.
	BaseURL string `envconfig:"BASE_URL"`

	// AuthToken seeds the in-memory session. It is read, never written.
	AuthToken string `envconfig:"AUTH_TOKEN"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Debug dumps every HTTP exchange at debug level.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// MockAddr is where serve-mock listens.
	MockAddr string `envconfig:"MOCK_ADDR" default:"127.0.0.1:3001"`
}

// Load reads the configuration from the environment.
// Example: EMAILIGHT_ENVIRONMENT=production, EMAILIGHT_BASE_URL=http://localhost:3001/api
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("EMAILIGHT", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process environment variables")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown environments.
func (c *Config) Validate() error {
	switch c.Environment {
	case client.Development, client.Production:
		return nil
	default:
		return errors.Errorf("unsupported EMAILIGHT_ENVIRONMENT: %s", c.Environment)
	}
}

// ResolvedBaseURL returns BaseURL when set, otherwise the environment default.
func (c *Config) ResolvedBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return client.BaseURLFor(c.Environment)
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.ResolvedBaseURL()),
		client.WithDebugLogging(c.Debug),
	}
	if c.AuthToken != "" {
		opts = append(opts, client.WithAuthToken(c.AuthToken))
	}
	return opts
}

// NewForTesting returns a development config pointing at baseURL.
func NewForTesting(baseURL string) *Config {
	if baseURL == "" {
		baseURL = devmode.BaseURL
	}
	return &Config{
		Environment: client.Development,
		BaseURL:     baseURL,
		LogLevel:    "disabled",
		MockAddr:    devmode.Addr,
	}
}
