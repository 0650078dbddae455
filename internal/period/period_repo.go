package period

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=period_repo.go -destination=mock/period_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Period) error
	FindAll(ctx context.Context) ([]Period, error)
	FindByID(ctx context.Context, id string) (*Period, error)
	FindCurrent(ctx context.Context, asOf time.Time) (*Period, error)
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

func (r *repository) Create(ctx context.Context, p *Period) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Period, error) {
	var periods []Period
	err := r.conn(ctx).Order("start_date DESC").Find(&periods).Error
	return periods, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Period, error) {
	var p Period
	if err := r.conn(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindCurrent returns the period whose end date falls in asOf's year, earliest first.
func (r *repository) FindCurrent(ctx context.Context, asOf time.Time) (*Period, error) {
	var p Period
	err := r.conn(ctx).
		Scopes(scope.EndingInYear(asOf)).
		Order("end_date ASC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
