package leavetype

import "time"

const (
	MinNameLength = 4
	MaxNameLength = 150
	MinDays       = 1
	MaxDays       = 90
)

type LeaveType struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	Name         string `gorm:"type:varchar(150);not null;uniqueIndex:uq_leave_type_name"`
	NumberOfDays int    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (LeaveType) TableName() string {
	return "leave_types"
}
