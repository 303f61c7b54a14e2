package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sp-provision/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log lines.
	Env string `env:"ENV" envDefault:"prod"`

	// Ads holds credentials and endpoints. Environment variables prefixed
	// with ADS_ will populate this struct.
	Ads configs.Ads `envPrefix:"ADS_"`

	// Provision controls the run itself (PROVISION_ prefix).
	Provision configs.Provision `envPrefix:"PROVISION_"`

	// HTTP holds configuration for the serve command (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`
}

// Load reads a .env file from the working directory when one exists, then
// parses the environment into a Config. Variables already set in the
// environment win over the file. A missing required variable is an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return Parse()
}

// Parse reads configuration from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
