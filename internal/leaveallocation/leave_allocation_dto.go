package leaveallocation

type EditAllocationRequest struct {
	Days *int `json:"days" binding:"required,min=0"`
}

type AllocationResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	PeriodID      string `json:"period_id"`
	PeriodName    string `json:"period_name,omitempty"`
	Days          int    `json:"days"`
}

type EmployeeSummary struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type EmployeeAllocationsResponse struct {
	Employee              EmployeeSummary      `json:"employee"`
	PeriodID              string               `json:"period_id"`
	PeriodName            string               `json:"period_name"`
	Allocations           []AllocationResponse `json:"allocations"`
	IsCompletedAllocation bool                 `json:"is_completed_allocation"`
}

type AllocationDetailResponse struct {
	AllocationResponse
	Employee EmployeeSummary `json:"employee"`
}
