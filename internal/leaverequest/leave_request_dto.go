package leaverequest

type CreateLeaveRequestRequest struct {
	LeaveTypeID     string `json:"leave_type_id" binding:"required"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	RequestComments string `json:"request_comments" binding:"max=1000"`
}

type ReviewLeaveRequestRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type EmployeeSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type LeaveRequestResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	LeaveTypeID     string `json:"leave_type_id"`
	LeaveTypeName   string `json:"leave_type_name,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	NumberOfDays    int    `json:"number_of_days"`
	RequestComments string `json:"request_comments,omitempty"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	ReviewerID      string `json:"reviewer_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type AdminLeaveRequestsResponse struct {
	ApprovedRequests int                    `json:"approved_requests"`
	PendingRequests  int                    `json:"pending_requests"`
	DeclinedRequests int                    `json:"declined_requests"`
	TotalRequests    int                    `json:"total_requests"`
	Requests         []LeaveRequestResponse `json:"requests"`
}

type LeaveRequestReviewResponse struct {
	LeaveRequestResponse
	Employee EmployeeSummary `json:"employee"`
}

type ExceedsAllocationResponse struct {
	Exceeds bool `json:"exceeds"`
}
