package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/handylink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/handylink/internal/logging"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the HandyLink CLI.
//
// Fields:
//   - APIBaseURL: root of the HandyLink HTTP API, e.g. http://localhost:8000/api.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - Store: session store driver and its connection settings.
//   - Log: log level and output format.
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	Store          Store         `envPrefix:"STORE_"`
	Log            Log           `envPrefix:"LOG_"`
}

// Store selects the session store.
type Store struct {
	Driver        string `env:"DRIVER"`
	DSN           string `env:"DSN"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

type Log struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.Store = Store{
		Driver:    metadata.DriverSQLite,
		DSN:       "handylink.db",
		RedisAddr: "localhost:6379",
	}
	c.Log = Log{Level: "warn", Format: logging.FormatText}
}

// StoreOptions converts the store settings for metadata.Open.
func (c *Config) StoreOptions() metadata.Options {
	return metadata.Options{
		Driver:        c.Store.Driver,
		DSN:           c.Store.DSN,
		RedisAddr:     c.Store.RedisAddr,
		RedisPassword: c.Store.RedisPassword,
		RedisDB:       c.Store.RedisDB,
		KeyPrefix:     "handylink:",
	}
}

// Validate reports settings that can not work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q", c.APIBaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	switch c.Store.Driver {
	case metadata.DriverSQLite, metadata.DriverMemory, metadata.DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON, logging.FormatZap:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file named by --config, the environment (with an optional .env
// file) and the flags set in fs. Later sources take precedence over earlier
// ones. fs must have been set up with RegisterFlags and parsed.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := parseJson(cfg, path); err != nil {
			return nil, err
		}
	}

	envFile, err := fs.GetString(FlagEnvFile)
	if err != nil {
		return nil, err
	}
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, nil); err != nil {
		return nil, err
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
