package rbac

import (
	"context"
	"sync"

	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListPolicies(ctx context.Context) ([]domain.PolicyResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l.Named("rbac.service"),
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		s.logger.Error("list rbac policies failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	// Administrator > Supervisor > Employee
	hierarchy := [][]string{
		{domain.RoleAdministrator, domain.RoleSupervisor},
		{domain.RoleSupervisor, domain.RoleEmployee},
	}
	if _, err := s.enforcer.AddGroupingPolicies(hierarchy); err != nil {
		return err
	}

	for _, p := range rows {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("policies", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListPolicies(ctx context.Context) ([]domain.PolicyResponse, error) {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}
	return mapToPolicyResponse(rows), nil
}
