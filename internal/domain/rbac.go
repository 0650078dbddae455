package domain

// Roles are ordered Administrator > Supervisor > Employee; a role inherits every
// permission of the roles below it.
const (
	RoleEmployee      = "Employee"
	RoleSupervisor    = "Supervisor"
	RoleAdministrator = "Administrator"
)

var Roles = []string{RoleEmployee, RoleSupervisor, RoleAdministrator}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PolicyResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
