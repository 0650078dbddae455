package user_test

import (
	"context"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/user"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(&user.User{}))
	return db
}

func TestUserRepository(t *testing.T) {
	db := newRepoTestDB(t)
	repo := user.NewRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &user.User{ID: "u-1", FirstName: "Zed", LastName: "Young", Email: "zed@example.com", Password: "x", Role: domain.RoleEmployee}))
	assert.NoError(t, repo.Create(ctx, &user.User{ID: "u-2", FirstName: "Ann", LastName: "Baker", Email: "ann@example.com", Password: "x", Role: domain.RoleEmployee}))
	assert.NoError(t, repo.Create(ctx, &user.User{ID: "u-3", FirstName: "Sue", LastName: "Lead", Email: "sue@example.com", Password: "x", Role: domain.RoleSupervisor}))

	t.Run("find by email is case-insensitive", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "ANN@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "u-2", got.ID)
	})

	t.Run("exists by email", func(t *testing.T) {
		ok, err := repo.ExistsByEmail(ctx, "Zed@Example.com")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("find by role ordered by last name", func(t *testing.T) {
		got, err := repo.FindByRole(ctx, domain.RoleEmployee)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "Baker", got[0].LastName)
		assert.Equal(t, "Young", got[1].LastName)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := repo.Create(ctx, &user.User{ID: "u-4", FirstName: "A", LastName: "B", Email: "ann@example.com", Password: "x", Role: domain.RoleEmployee})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
