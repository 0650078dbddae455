package events

import "time"

const (
	EmployeeLifecycleTopic = "leave.employee.lifecycle.v1"

	EmployeeRegistered = "employee_registered"
)

type EmployeeRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
