package store

import (
	"context"
	"fmt"

	"interviewmate/internal/config"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open builds the backend named by cfg.Driver. The returned close
// function releases the underlying connection.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, func() error, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), func() error { return nil }, nil
	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if cfg.Driver == "sqlite" {
			dialector = sqlite.Open(cfg.DSN)
		} else {
			dialector = postgres.Open(cfg.DSN)
		}
		db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s, err := NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return s, closeFn, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(rdb, cfg.RedisPrefix), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
