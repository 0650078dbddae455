package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-leave/internal/bootstrap"
	"go-leave/internal/period"
	perioderrors "go-leave/internal/period/errors"
	"go-leave/internal/rbac"
	"go-leave/internal/user"

	"go.uber.org/zap"
)

type seeder struct {
	users   user.Service
	periods period.Service
	rbac    rbac.Repository
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

// run is safe to repeat: every step only inserts what is missing.
func (s seeder) run(ctx context.Context, asOf time.Time, adminEmail, adminPassword string) error {
	if err := s.rbac.EnsurePolicies(ctx, rbac.DefaultPolicies); err != nil {
		return fmt.Errorf("seed rbac policies: %w", err)
	}

	created, err := s.users.EnsureAdministrator(ctx, adminEmail, adminPassword)
	if err != nil {
		return fmt.Errorf("seed administrator: %w", err)
	}
	if created {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "SEED_ADMINISTRATOR",
			Message: "Administrator account created",
			Meta:    map[string]any{"email": adminEmail},
		})
	}

	_, err = s.periods.GetCurrentPeriod(ctx, asOf)
	if err == nil {
		return nil
	}
	if !errors.Is(err, perioderrors.ErrNoCurrentPeriod) {
		return fmt.Errorf("seed period: %w", err)
	}

	year := asOf.Year()
	p, err := s.periods.Create(ctx, period.CreatePeriodRequest{
		Name:      fmt.Sprintf("%d", year),
		StartDate: fmt.Sprintf("%d-01-01", year),
		EndDate:   fmt.Sprintf("%d-12-31", year),
	})
	if err != nil {
		return fmt.Errorf("seed period: %w", err)
	}

	s.logger.Info("current period seeded", zap.String("period_id", p.ID), zap.String("name", p.Name))
	return nil
}
