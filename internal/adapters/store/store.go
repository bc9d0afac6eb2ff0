// Package store selects the shared key-value store adapter by driver name.
package store

import (
	"fmt"
	"time"

	"github.com/jsamuelsen/dailywisdom/internal/adapters/store/file"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/store/memory"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/store/redis"
	"github.com/jsamuelsen/dailywisdom/internal/adapters/store/sqlite"
	"github.com/jsamuelsen/dailywisdom/internal/ports"
)

// Supported driver names.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Store is a shared key-value store that can report its health and be closed.
type Store interface {
	ports.KeyValueStore
	ports.HealthChecker
	Close() error
}

// Config selects and configures a driver.
type Config struct {
	Driver string

	FilePath   string
	SQLitePath string

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisKeyPrefix   string
	RedisDialTimeout time.Duration
	RedisReadTimeout time.Duration
}

// Open creates the store for cfg.Driver.
func Open(cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Driver {
	case DriverFile:
		s, err = file.New(cfg.FilePath)
	case DriverSQLite:
		s, err = sqlite.Open(cfg.SQLitePath)
	case DriverRedis:
		s, err = redis.New(redis.Config{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			KeyPrefix:   cfg.RedisKeyPrefix,
			DialTimeout: cfg.RedisDialTimeout,
			ReadTimeout: cfg.RedisReadTimeout,
		})
	case DriverMemory:
		s = memory.New()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
	}

	return s, nil
}
