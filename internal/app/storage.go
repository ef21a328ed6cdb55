package app

import (
	"context"
	"fmt"

	"go-roster/internal/shared/connection"
	"go-roster/internal/storage"

	"go.uber.org/zap"
)

// openStorage builds the backend named by cfg.StorageDriver. The returned
// close func is never nil.
func openStorage(ctx context.Context, cfg Config) (storage.KV, func() error, error) {
	log := zap.L().Named("app.storage")
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case DriverMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return storage.NewMemory(), noop, nil

	case DriverSQLite:
		kv, err := storage.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("sqlite storage ready", zap.String("path", kv.Path()))
		return kv, kv.Close, nil

	case DriverRedis:
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			return nil, noop, err
		}
		return storage.NewRedis(rdb, cfg.RedisKeyPrefix), rdb.Close, nil

	case DriverPostgres:
		db, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.ConnectRetries)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		kv := storage.NewGorm(db)
		if err := kv.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("migrate kv table: %w", err)
		}
		return kv, sqlDB.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}
