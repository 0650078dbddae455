package app

import (
	"context"
	"database/sql"
	"fmt"

	"go-leave/internal/auth"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/i18n"
	"go-leave/internal/leaveallocation"
	"go-leave/internal/leaverequest"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/period"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/shared/clock"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	clk := clock.System()

	translator, err := i18n.New(cfg.DefaultLocale, logger)
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	periodRepo := period.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	allocationRepo := leaveallocation.NewRepository(gormDB)
	leaveRequestRepo := leaverequest.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, auth.TokenConfig{
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, logger)
	userService := user.NewService(db, userRepo, outboxRepo, logger)
	periodService := period.NewService(db, periodRepo, logger)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb, logger)
	allocationService := leaveallocation.NewService(db, allocationRepo, periodService, leaveTypeService, userService, logger)
	leaveRequestService := leaverequest.NewService(leaverequest.Dependencies{
		DB:          db,
		Repo:        leaveRequestRepo,
		Allocations: allocationRepo,
		Periods:     periodService,
		Users:       userService,
		Outbox:      outboxRepo,
		Labels:      translator,
	}, logger)

	if cfg.RunSeed {
		s := seeder{
			users:   userService,
			periods: periodService,
			rbac:    rbacRepo,
			audit:   bootstrap.NewStdoutAuditLogger(logger),
			logger:  logger.Named("app.seed"),
		}
		if err := s.run(ctx, clk.Now(), cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}

	if err := rbacService.LoadPolicy(ctx); err != nil {
		return fmt.Errorf("load rbac policies: %w", err)
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, logger)
	userHandler := user.NewHandler(userService, logger)
	periodHandler := period.NewHandler(periodService, clk, logger)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService, logger)
	allocationHandler := leaveallocation.NewHandler(allocationService, leaveTypeService, clk, logger)
	leaveRequestHandler := leaverequest.NewHandler(leaveRequestService, translator, clk, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Middleware ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Locale(translator),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		user.RegisterRoutes(api, userHandler, authMiddleware, rbacService)
		period.RegisterRoutes(api, periodHandler, authMiddleware, rbacService)
		leavetype.RegisterRoutes(api, leaveTypeHandler, authMiddleware, rbacService)
		leaveallocation.RegisterRoutes(api, allocationHandler, authMiddleware, rbacService)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, authMiddleware, rbacService, rdb)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware, rbacService)
	}

	return nil
}
