package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/handylink/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "10s" or as integer nanoseconds. Only keys present in the
// file are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Store          struct {
		Driver        string `json:"driver"`
		DSN           string `json:"dsn"`
		RedisAddr     string `json:"redis_addr"`
		RedisPassword string `json:"redis_password"`
		RedisDB       *int   `json:"redis_db"`
	} `json:"store"`
	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log"`
}

// parseJson overlays cfg with values loaded from the JSON file at path.
func parseJson(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	setString(&cfg.Store.Driver, jc.Store.Driver)
	setString(&cfg.Store.DSN, jc.Store.DSN)
	setString(&cfg.Store.RedisAddr, jc.Store.RedisAddr)
	setString(&cfg.Store.RedisPassword, jc.Store.RedisPassword)
	if jc.Store.RedisDB != nil {
		cfg.Store.RedisDB = *jc.Store.RedisDB
	}

	setString(&cfg.Log.Level, jc.Log.Level)
	setString(&cfg.Log.Format, jc.Log.Format)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
