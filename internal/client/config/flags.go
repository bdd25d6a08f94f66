package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig        = "config"
	FlagEnvFile       = "env-file"
	FlagAPIURL        = "api-url"
	FlagTimeout       = "timeout"
	FlagStore         = "store"
	FlagStoreDSN      = "store-dsn"
	FlagRedisAddr     = "redis-addr"
	FlagRedisPassword = "redis-password"
	FlagRedisDB       = "redis-db"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
)

// RegisterFlags declares the configuration flags on fs. Defaults shown in
// help come from LoadDefaults; only flags set on the command line override
// the other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to JSON config file")
	fs.String(FlagEnvFile, ".env", "dotenv file with HANDYLINK_* variables")
	fs.StringP(FlagAPIURL, "a", d.APIBaseURL, "HandyLink API base URL")
	fs.Duration(FlagTimeout, d.RequestTimeout, "HTTP request timeout")
	fs.String(FlagStore, d.Store.Driver, "session store driver: sqlite, memory or redis")
	fs.String(FlagStoreDSN, d.Store.DSN, "SQLite database file")
	fs.String(FlagRedisAddr, d.Store.RedisAddr, "Redis address")
	fs.String(FlagRedisPassword, "", "Redis password")
	fs.Int(FlagRedisDB, d.Store.RedisDB, "Redis database number")
	fs.String(FlagLogLevel, d.Log.Level, "log level: debug, info, warn or error")
	fs.String(FlagLogFormat, d.Log.Format, "log format: text, json or zap")
}

// applyFlags copies the flags that were set on the command line into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err != nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(FlagAPIURL, &cfg.APIBaseURL)
	str(FlagStore, &cfg.Store.Driver)
	str(FlagStoreDSN, &cfg.Store.DSN)
	str(FlagRedisAddr, &cfg.Store.RedisAddr)
	str(FlagRedisPassword, &cfg.Store.RedisPassword)
	str(FlagLogLevel, &cfg.Log.Level)
	str(FlagLogFormat, &cfg.Log.Format)
	if err != nil {
		return err
	}

	if fs.Changed(FlagTimeout) {
		if cfg.RequestTimeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return err
		}
	}
	if fs.Changed(FlagRedisDB) {
		if cfg.Store.RedisDB, err = fs.GetInt(FlagRedisDB); err != nil {
			return err
		}
	}
	return nil
}
