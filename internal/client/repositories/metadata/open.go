package metadata

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Options selects and configures a store driver.
type Options struct {
	Driver string

	// DSN is the SQLite database path.
	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// KeyPrefix namespaces Redis keys.
	KeyPrefix string
}

// Open builds the Repository selected by opts. The returned close function
// releases the underlying connection and is never nil.
func Open(ctx context.Context, opts Options) (Repository, func() error, error) {
	switch opts.Driver {
	case "", DriverSQLite:
		db, err := InitDatabase(ctx, opts.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("init sqlite store: %w", err)
		}
		return NewSQLiteRepository(db), db.Close, nil

	case DriverMemory:
		return NewMemoryRepository(), func() error { return nil }, nil

	case DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect redis store: %w", err)
		}
		return NewRedisRepository(rdb, opts.KeyPrefix), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
