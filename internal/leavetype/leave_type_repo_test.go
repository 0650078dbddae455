package leavetype_test

import (
	"context"
	"testing"

	"go-leave/internal/leavetype"

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

	assert.NoError(t, db.AutoMigrate(&leavetype.LeaveType{}))
	return db
}

func TestLeaveTypeRepository(t *testing.T) {
	db := newRepoTestDB(t)
	repo := leavetype.NewRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &leavetype.LeaveType{ID: "lt-1", Name: "Annual", NumberOfDays: 12}))
	assert.NoError(t, repo.Create(ctx, &leavetype.LeaveType{ID: "lt-2", Name: "Sick", NumberOfDays: 10}))

	t.Run("name lookup ignores case", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "ANNUAL", "")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excluding own id", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "annual", "lt-1")
		assert.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByName(ctx, "annual", "lt-2")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update", func(t *testing.T) {
		assert.NoError(t, repo.Update(ctx, &leavetype.LeaveType{ID: "lt-2", Name: "Sick Leave", NumberOfDays: 14}))

		got, err := repo.FindByID(ctx, "lt-2")
		assert.NoError(t, err)
		assert.Equal(t, "Sick Leave", got.Name)
		assert.Equal(t, 14, got.NumberOfDays)
	})

	t.Run("delete unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, "nope"))

		all, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Equal(t, "Annual", all[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, "lt-1"))

		_, err := repo.FindByID(ctx, "lt-1")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
