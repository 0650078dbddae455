package leaveallocation

import (
	"time"

	"go-leave/internal/leavetype"
	"go-leave/internal/period"
)

const UniqueAllocationConstraint = "uq_leave_allocation_employee_type_period"

// LeaveAllocation is the remaining balance of one employee for one leave type in one period.
type LeaveAllocation struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	EmployeeID  string `gorm:"type:varchar(36);not null;uniqueIndex:uq_leave_allocation_employee_type_period,priority:1"`
	LeaveTypeID string `gorm:"type:varchar(36);not null;uniqueIndex:uq_leave_allocation_employee_type_period,priority:2"`
	PeriodID    string `gorm:"type:varchar(36);not null;uniqueIndex:uq_leave_allocation_employee_type_period,priority:3"`
	Days        int    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID"`
	Period    *period.Period       `gorm:"foreignKey:PeriodID"`
}

func (LeaveAllocation) TableName() string {
	return "leave_allocations"
}
