package leavetype

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_type_repo.go -destination=mock/leave_type_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id string) (*LeaveType, error)
	ExistsByName(ctx context.Context, name, excludingID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).Create(lt).Error
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).
		Model(&LeaveType{}).
		Where("id = ?", lt.ID).
		Updates(map[string]any{
			"name":           lt.Name,
			"number_of_days": lt.NumberOfDays,
		}).Error
}

// Delete is a no-op for unknown ids.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&LeaveType{}).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.conn(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	if err := r.conn(ctx).First(&lt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) ExistsByName(ctx context.Context, name, excludingID string) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(&LeaveType{}).Scopes(scope.CaseInsensitiveName(name))
	if excludingID != "" {
		q = q.Where("id <> ?", excludingID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
