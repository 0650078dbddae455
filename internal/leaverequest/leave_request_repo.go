package leaverequest

import (
	"context"
	"database/sql"

	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_request_repo.go -destination=mock/leave_request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *LeaveRequest) error
	UpdateStatus(ctx context.Context, r *LeaveRequest, from string) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
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

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.conn(ctx).Omit("LeaveType").Create(lr).Error
}

// UpdateStatus writes only the review columns, and only while the row is still in status from.
func (r *repository) UpdateStatus(ctx context.Context, lr *LeaveRequest, from string) error {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", lr.ID, from).
		Updates(map[string]any{
			"status":      lr.Status,
			"reviewer_id": lr.ReviewerID,
			"reviewed_at": lr.ReviewedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return leaverequesterrors.ErrInvalidStatusTransition
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.conn(ctx).
		Preload("LeaveType").
		First(&lr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID)).
		Preload("LeaveType").
		Order("start_date DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.conn(ctx).
		Preload("LeaveType").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string
		Total  int
	}
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
