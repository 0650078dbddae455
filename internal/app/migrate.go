package app

import (
	"go-leave/internal/leaveallocation"
	"go-leave/internal/leaverequest"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/period"
	"go-leave/internal/rbac"
	"go-leave/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&user.User{},
		&period.Period{},
		&leavetype.LeaveType{},
		&leaveallocation.LeaveAllocation{},
		&leaverequest.LeaveRequest{},
		&rbac.PolicyRow{},
		&kafka.OutboxEvent{},
	)
	if err != nil {
		return err
	}
	zap.L().Named("app.migrate").Info("database migrated")
	return nil
}
