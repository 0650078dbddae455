package rbac

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	policies []PolicyRow
	err      error
}

func (f *fakeRepo) ListPolicies(ctx context.Context) ([]PolicyRow, error) {
	return f.policies, f.err
}

func (f *fakeRepo) EnsurePolicies(ctx context.Context, rows []PolicyRow) error {
	f.policies = append(f.policies, rows...)
	return f.err
}

func newLoadedService(t *testing.T) Service {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(&fakeRepo{policies: DefaultPolicies}, enforcer)
	assert.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newLoadedService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee creates request", domain.RoleEmployee, ResourceLeaveRequest, ActionCreate, true},
		{"employee cannot review", domain.RoleEmployee, ResourceLeaveRequest, ActionReview, false},
		{"employee cannot manage types", domain.RoleEmployee, ResourceLeaveType, ActionManage, false},
		{"supervisor reviews", domain.RoleSupervisor, ResourceLeaveRequest, ActionReview, true},
		{"supervisor inherits employee", domain.RoleSupervisor, ResourceLeaveRequest, ActionCancel, true},
		{"supervisor cannot manage allocations", domain.RoleSupervisor, ResourceAllocation, ActionManage, false},
		{"administrator inherits supervisor", domain.RoleAdministrator, ResourceLeaveRequest, ActionReadAll, true},
		{"administrator manages types", domain.RoleAdministrator, ResourceLeaveType, ActionManage, true},
		{"unknown role", "Guest", ResourceLeaveType, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     tt.role,
				Resource: tt.resource,
				Action:   tt.action,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRBACService_LoadPolicy_RepoError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(&fakeRepo{err: errors.New("db down")}, enforcer)

	assert.Error(t, svc.LoadPolicy(context.Background()))
}

func TestRBACService_ListPolicies(t *testing.T) {
	svc := NewService(&fakeRepo{policies: []PolicyRow{
		NewPolicyRow(domain.RoleEmployee, ResourceLeaveType, ActionRead),
	}}, nil)

	res, err := svc.ListPolicies(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.PolicyResponse{{Role: domain.RoleEmployee, Resource: ResourceLeaveType, Action: ActionRead}}, res)
}
