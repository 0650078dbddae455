package rbac

import (
	"go-leave/internal/domain"

	"github.com/google/uuid"
)

const (
	ResourceLeaveType    = "leave_type"
	ResourceAllocation   = "leave_allocation"
	ResourceLeaveRequest = "leave_request"
	ResourcePeriod       = "period"
	ResourceUser         = "user"
	ResourceRBAC         = "rbac"

	ActionRead    = "read"
	ActionReadOwn = "read_own"
	ActionReadAll = "read_all"
	ActionCreate  = "create"
	ActionCancel  = "cancel"
	ActionReview  = "review"
	ActionManage  = "manage"
)

// DefaultPolicies is the permission set seeded into rbac_policies.
var DefaultPolicies = []PolicyRow{
	{Role: domain.RoleEmployee, Resource: ResourceLeaveType, Action: ActionRead},
	{Role: domain.RoleEmployee, Resource: ResourcePeriod, Action: ActionRead},
	{Role: domain.RoleEmployee, Resource: ResourceAllocation, Action: ActionReadOwn},
	{Role: domain.RoleEmployee, Resource: ResourceLeaveRequest, Action: ActionCreate},
	{Role: domain.RoleEmployee, Resource: ResourceLeaveRequest, Action: ActionReadOwn},
	{Role: domain.RoleEmployee, Resource: ResourceLeaveRequest, Action: ActionCancel},

	{Role: domain.RoleSupervisor, Resource: ResourceLeaveRequest, Action: ActionReadAll},
	{Role: domain.RoleSupervisor, Resource: ResourceLeaveRequest, Action: ActionReview},

	{Role: domain.RoleAdministrator, Resource: ResourceLeaveType, Action: ActionManage},
	{Role: domain.RoleAdministrator, Resource: ResourceAllocation, Action: ActionManage},
	{Role: domain.RoleAdministrator, Resource: ResourcePeriod, Action: ActionManage},
	{Role: domain.RoleAdministrator, Resource: ResourceUser, Action: ActionManage},
	{Role: domain.RoleAdministrator, Resource: ResourceRBAC, Action: ActionRead},
}

func NewPolicyRow(role, resource, action string) PolicyRow {
	return PolicyRow{
		ID:       uuid.NewString(),
		Role:     role,
		Resource: resource,
		Action:   action,
	}
}

func mapToPolicyResponse(rows []PolicyRow) []domain.PolicyResponse {
	out := make([]domain.PolicyResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.PolicyResponse{
			Role:     r.Role,
			Resource: r.Resource,
			Action:   r.Action,
		})
	}
	return out
}
