// Package storage selects and opens the key-value medium named by the
// configuration and wraps it in a kvstore.Store.
package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"treasury/internal/config"
	"treasury/internal/database"
	"treasury/internal/kvstore"
	"treasury/internal/logger"
)

// Handle is an open store plus whatever must be released on shutdown.
type Handle struct {
	Store  *kvstore.Store
	closer func() error
}

// Close releases the medium's connections.
func (h *Handle) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer()
}

// Open connects to the configured medium. SQL media are migrated first.
func Open(cfg *config.Config) (*Handle, error) {
	opts := []kvstore.Option{kvstore.WithTimeout(cfg.StorageTimeout)}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Get().Warn("Using in-memory storage; nothing survives a restart")
		return &Handle{Store: kvstore.New(kvstore.NewMemoryMedium(), opts...)}, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		medium := kvstore.NewRedisMedium(client, cfg.RedisPrefix)
		return &Handle{Store: kvstore.New(medium, opts...), closer: client.Close}, nil

	default:
		manager, err := database.NewManager(cfg)
		if err != nil {
			return nil, err
		}
		if err := manager.RunMigrations(); err != nil {
			_ = manager.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		medium := kvstore.NewGormMedium(manager.DB())
		return &Handle{Store: kvstore.New(medium, opts...), closer: manager.Close}, nil
	}
}
