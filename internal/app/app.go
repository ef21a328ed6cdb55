package app

import (
	"context"

	"go-roster/internal/employee"
	"go-roster/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp opens the configured backend, seeds it on first use and mounts
// every route on router. The returned cleanup releases the backend and the
// event writer.
func BuildApp(ctx context.Context, router *gin.Engine, cfg Config) (func(), error) {
	log := zap.L().Named("app")

	kv, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("storage backend established", zap.String("driver", cfg.StorageDriver))

	closers := []func() error{closeStorage}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn("cleanup failed", zap.Error(err))
			}
		}
	}

	var publisher employee.EventPublisher
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, writer.Close)
		publisher = employee.NewKafkaEventPublisher(writer)
		log.Info("lifecycle events enabled", zap.String("broker", cfg.KafkaBroker))
	} else {
		log.Info("KAFKA_BROKER not set; lifecycle events are dropped")
	}

	if err := registerModules(ctx, router, modules{
		kv:         kv,
		publisher:  publisher,
		loginDelay: cfg.LoginDelay,
		driver:     cfg.StorageDriver,
	}); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
