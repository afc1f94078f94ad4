// Package config loads server and CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mmynk/splitledger/internal/money"
)

// DevJWTSecret is the fallback signing secret. Servers log a warning when
// they run with it.
const DevJWTSecret = "splitledger-dev-secret"

// Config holds every setting read from the environment.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// DBDriver is "sqlite" or "postgres".
	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath      string `env:"DB_PATH" envDefault:"./data/splitledger.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"splitledger-dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Currency is the ISO 4217 code amounts are expressed in.
	Currency string `env:"CURRENCY" envDefault:"EUR"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OTELEndpoint string `env:"OTEL_ENDPOINT"`
	StaticPath   string `env:"STATIC_PATH"`
}

// Load reads the optional dotenv files (".env" when none are given) and then
// parses the environment. Variables already set win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		slog.Debug("No .env file found, relying on environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want sqlite or postgres)", c.DBDriver)
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if _, err := money.NewCurrency(c.Currency); err != nil {
		return fmt.Errorf("CURRENCY: %w", err)
	}
	return nil
}

// MustCurrency returns the configured currency. Validate has already
// checked the code.
func (c *Config) MustCurrency() money.Currency {
	return money.MustCurrency(c.Currency)
}
