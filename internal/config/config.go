// Package config holds runtime settings for the CLI.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds settings shared by the dispatcher, shell and reporter.
// Values come from the environment (TTRACK_*), with common command-line
// flags taking precedence.
type Config struct {
	// Quiet suppresses informational output ("ok" lines and notices).
	Quiet bool `env:"TTRACK_QUIET" env-default:"false"`

	// Debug lowers the log level to debug.
	Debug bool `env:"TTRACK_DEBUG" env-default:"false"`

	// StatusInterval is the tick interval of the background status reporter.
	StatusInterval time.Duration `env:"TTRACK_STATUS_INTERVAL" env-default:"10s"`
}

// New reads configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}
