// Package redis implements the shared key-value store on Redis, for hosts
// that publish their values to a shared Redis instance.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// Config contains Redis connection settings.
type Config struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// Store reads keys from Redis. Keys are looked up as KeyPrefix+key.
type Store struct {
	client *redis.Client
	prefix string
}

// New creates a store. It does not connect; use Check to verify the server.
func New(cfg Config) (*Store, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis store: address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
		MaxRetries:  -1,
	})

	return &Store{
		client: client,
		prefix: cfg.KeyPrefix,
	}, nil
}

// Get implements ports.KeyValueStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewNotFoundError("key", key)
	}

	if err != nil {
		return nil, domain.NewUnavailableError(s.Name(), err.Error())
	}

	return val, nil
}

// Name returns the health check name for this store.
func (s *Store) Name() string {
	return "store:redis"
}

// Check pings the server.
func (s *Store) Check(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	return nil
}

// Close closes the client connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
