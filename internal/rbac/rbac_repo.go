package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListPolicies(ctx context.Context) ([]PolicyRow, error)
	EnsurePolicies(ctx context.Context, rows []PolicyRow) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPolicies(ctx context.Context) ([]PolicyRow, error) {
	var result []PolicyRow
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&result).Error
	return result, err
}

// EnsurePolicies inserts the rows that are not stored yet; existing ones are left alone.
func (r *repository) EnsurePolicies(ctx context.Context, rows []PolicyRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			p := NewPolicyRow(row.Role, row.Resource, row.Action)
			err := tx.
				Where("role = ? AND resource = ? AND action = ?", p.Role, p.Resource, p.Action).
				FirstOrCreate(&p).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
