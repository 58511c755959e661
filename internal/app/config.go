package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"meteolog.dev/internal/appconf"
)

// Config holds all the configuration settings for the Application. Values are
// read from environment variables first; the collector entry point layers
// command-line flag overrides on top.
type Config struct {
	Port         int           `env:"METEOLOG_PORT" envDefault:"4000"`
	Env          string        `env:"METEOLOG_ENV" envDefault:"development"`
	APIKeys      []string      `env:"METEOLOG_API_KEYS" envDefault:"test"`
	DBPath       string        `env:"METEOLOG_DB_PATH" envDefault:"observations.db"`
	Latitude     float64       `env:"METEOLOG_LATITUDE" envDefault:"55.6878"`
	Longitude    float64       `env:"METEOLOG_LONGITUDE" envDefault:"37.3684"`
	Timezone     string        `env:"METEOLOG_TIMEZONE" envDefault:"Europe/Moscow"`
	PollInterval time.Duration `env:"METEOLOG_POLL_INTERVAL" envDefault:"3m"`
	RateLimit    int           `env:"METEOLOG_RATE_LIMIT" envDefault:"100"`
	ExportDir    string        `env:"METEOLOG_EXPORT_DIR" envDefault:"."`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Environment returns the parsed operating environment
func (c Config) Environment() appconf.Environment {
	return appconf.EnvFlagToEnvironment(c.Env)
}
