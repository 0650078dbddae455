package leaverequest

import (
	"time"

	"go-leave/internal/leavetype"
	"go-leave/internal/shared/dateutil"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDeclined = "Declined"
	StatusCanceled = "Canceled"
)

type LeaveRequest struct {
	ID              string     `gorm:"primaryKey;type:varchar(36)"`
	EmployeeID      string     `gorm:"type:varchar(36);not null;index:idx_leave_requests_employee"`
	LeaveTypeID     string     `gorm:"type:varchar(36);not null"`
	StartDate       time.Time  `gorm:"type:date;not null"`
	EndDate         time.Time  `gorm:"type:date;not null"`
	RequestComments string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(16);not null;index:idx_leave_requests_status"`
	ReviewerID      *string    `gorm:"type:varchar(36)"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// NumberOfDays is recomputed from the stored dates on every read; a single-day request counts 0.
func (r LeaveRequest) NumberOfDays() int {
	return dateutil.DaysBetween(r.StartDate, r.EndDate)
}

// CanTransition reports whether the state machine allows moving from one status to another.
func CanTransition(from, to string) bool {
	switch to {
	case StatusApproved, StatusDeclined:
		return from == StatusPending
	case StatusCanceled:
		return from == StatusPending || from == StatusApproved
	default:
		return false
	}
}
