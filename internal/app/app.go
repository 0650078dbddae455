package app

import (
	"context"
	"errors"

	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure, migrates and seeds as configured, and mounts every route.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config) error {
	logger := zap.L()

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	if redisClient == nil {
		logger.Warn("REDIS_ADDR not set, running without cache and idempotency keys")
	}

	if cfg.RunMigrations {
		if err := Migrate(gormDB); err != nil {
			return err
		}
	}

	return registerModules(ctx, router, cfg, sqlDB, gormDB, redisClient, logger)
}
