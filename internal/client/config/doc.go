// Package config loads runtime configuration for the HandyLink CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Environment variables prefixed with HANDYLINK_, optionally loaded
//     from a .env file (--env-file).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-c, --config string      JSON config file
//	    --env-file string    dotenv file (default ".env")
//	-a, --api-url string     API base URL
//	    --timeout duration   HTTP request timeout
//	    --store string       sqlite, memory or redis
//	    --store-dsn string   SQLite database file
//	    --redis-addr string  Redis address
//	    --redis-password string
//	    --redis-db int
//	    --log-level string   debug, info, warn or error
//	    --log-format string  text, json or zap
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "request_timeout": "10s",
//	  "store": {"driver": "sqlite", "dsn": "handylink.db"},
//	  "log": {"level": "info", "format": "json"}
//	}
//
// # Environment
//
//	HANDYLINK_API_BASE_URL, HANDYLINK_REQUEST_TIMEOUT,
//	HANDYLINK_STORE_DRIVER, HANDYLINK_STORE_DSN, HANDYLINK_STORE_REDIS_ADDR,
//	HANDYLINK_STORE_REDIS_PASSWORD, HANDYLINK_STORE_REDIS_DB,
//	HANDYLINK_LOG_LEVEL, HANDYLINK_LOG_FORMAT
package config
