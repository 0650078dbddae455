package leaveallocation

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_allocation_repo.go -destination=mock/leave_allocation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, allocations []LeaveAllocation) error
	UpdateDays(ctx context.Context, id string, days int) error
	AdjustDays(ctx context.Context, id string, delta int) error
	FindByID(ctx context.Context, id string) (*LeaveAllocation, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) ([]LeaveAllocation, error)
	FindCurrent(ctx context.Context, employeeID, leaveTypeID, periodID string) (*LeaveAllocation, error)
	AllocatedLeaveTypeIDs(ctx context.Context, employeeID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) CreateBatch(ctx context.Context, allocations []LeaveAllocation) error {
	if len(allocations) == 0 {
		return nil
	}
	return r.conn(ctx).Omit("LeaveType", "Period").Create(&allocations).Error
}

func (r *repository) UpdateDays(ctx context.Context, id string, days int) error {
	return r.conn(ctx).
		Model(&LeaveAllocation{}).
		Where("id = ?", id).
		Update("days", days).Error
}

// AdjustDays applies delta in a single UPDATE so concurrent adjustments do not overwrite each other.
func (r *repository) AdjustDays(ctx context.Context, id string, delta int) error {
	return r.conn(ctx).
		Model(&LeaveAllocation{}).
		Where("id = ?", id).
		Update("days", gorm.Expr("days + ?", delta)).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveAllocation, error) {
	var a LeaveAllocation
	err := r.conn(ctx).
		Preload("LeaveType").
		Preload("Period").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) ([]LeaveAllocation, error) {
	var allocations []LeaveAllocation
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID), scope.Period(periodID)).
		Preload("LeaveType").
		Preload("Period").
		Order("created_at ASC").
		Find(&allocations).Error
	return allocations, err
}

func (r *repository) FindCurrent(ctx context.Context, employeeID, leaveTypeID, periodID string) (*LeaveAllocation, error) {
	var a LeaveAllocation
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID), scope.Period(periodID)).
		Where("leave_type_id = ?", leaveTypeID).
		Preload("LeaveType").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AllocatedLeaveTypeIDs spans every period.
func (r *repository) AllocatedLeaveTypeIDs(ctx context.Context, employeeID string) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&LeaveAllocation{}).
		Scopes(scope.Employee(employeeID)).
		Distinct("leave_type_id").
		Pluck("leave_type_id", &ids).Error
	return ids, err
}
