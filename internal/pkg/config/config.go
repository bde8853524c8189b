// Package config loads service settings from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	SiteURL   string `env:"SITE_URL,  default=https://thejurists.in"`

	StoreDriver string `env:"STORE_DRIVER, default=memory"`
	SeedFile    string `env:"SEED_FILE"`

	Mongo MongoConfig
	Redis RedisConfig
	Leads LeadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jurists"`
}

// RedisConfig leaves Addr empty by default, which turns lead throttling off.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type LeadConfig struct {
	RateLimit     int           `env:"LEAD_RATE_LIMIT,  default=5"`
	RateWindow    time.Duration `env:"LEAD_RATE_WINDOW, default=1h"`
	NotifyWorkers int           `env:"NOTIFY_WORKERS,   default=4"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverMongo:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverMongo, c.StoreDriver)
	}
	if c.Leads.RateLimit <= 0 {
		return fmt.Errorf("LEAD_RATE_LIMIT must be positive")
	}
	if c.Leads.RateWindow <= 0 {
		return fmt.Errorf("LEAD_RATE_WINDOW must be positive")
	}
	return nil
}
