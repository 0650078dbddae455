package events

import "time"

const (
	LeaveRequestLifecycleTopic = "leave.request.lifecycle.v1"

	LeaveRequestCreated  = "leave_request_created"
	LeaveRequestReviewed = "leave_request_reviewed"
	LeaveRequestCanceled = "leave_request_canceled"
)

// LeaveRequestEvent carries enough of the request for notifications without a lookup.
type LeaveRequestEvent struct {
	EventType      string    `json:"event_type"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	LeaveTypeID    string    `json:"leave_type_id"`
	LeaveTypeName  string    `json:"leave_type_name"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	NumberOfDays   int       `json:"number_of_days"`
	Status         string    `json:"status"`
	ReviewerID     string    `json:"reviewer_id,omitempty"`
	ActorID        string    `json:"actor_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
