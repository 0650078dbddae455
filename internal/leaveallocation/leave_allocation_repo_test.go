package leaveallocation_test

import (
	"context"
	"testing"

	leaveallocation "go-leave/internal/leaveallocation"
	leaveallocationerrors "go-leave/internal/leaveallocation/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/period"
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

	assert.NoError(t, db.AutoMigrate(&period.Period{}, &leavetype.LeaveType{}, &leaveallocation.LeaveAllocation{}))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	assert.NoError(t, period.NewRepository(db).Create(ctx, period2024))
	types := leavetype.NewRepository(db)
	assert.NoError(t, types.Create(ctx, &leavetype.LeaveType{ID: "lt-annual", Name: "Annual", NumberOfDays: 24}))
	assert.NoError(t, types.Create(ctx, &leavetype.LeaveType{ID: "lt-sick", Name: "Sick", NumberOfDays: 10}))
}

func TestLeaveAllocationRepository(t *testing.T) {
	db := newRepoTestDB(t)
	seedCatalog(t, db)
	repo := leaveallocation.NewRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.CreateBatch(ctx, []leaveallocation.LeaveAllocation{
		{ID: "a-1", EmployeeID: "emp-1", LeaveTypeID: "lt-annual", PeriodID: "p-2024", Days: 6},
		{ID: "a-2", EmployeeID: "emp-1", LeaveTypeID: "lt-sick", PeriodID: "p-2024", Days: 0},
		{ID: "a-3", EmployeeID: "emp-2", LeaveTypeID: "lt-annual", PeriodID: "p-2024", Days: 24},
	}))

	t.Run("find current includes leave type", func(t *testing.T) {
		got, err := repo.FindCurrent(ctx, "emp-1", "lt-annual", "p-2024")
		assert.NoError(t, err)
		assert.Equal(t, "a-1", got.ID)
		assert.Equal(t, "Annual", got.LeaveType.Name)
	})

	t.Run("adjust days is relative", func(t *testing.T) {
		assert.NoError(t, repo.AdjustDays(ctx, "a-3", -4))
		assert.NoError(t, repo.AdjustDays(ctx, "a-3", 1))

		got, err := repo.FindByID(ctx, "a-3")
		assert.NoError(t, err)
		assert.Equal(t, 21, got.Days)
		assert.Equal(t, "2024", got.Period.Name)
	})

	t.Run("allocated leave type ids", func(t *testing.T) {
		ids, err := repo.AllocatedLeaveTypeIDs(ctx, "emp-1")
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"lt-annual", "lt-sick"}, ids)
	})

	t.Run("composite uniqueness", func(t *testing.T) {
		err := repo.CreateBatch(ctx, []leaveallocation.LeaveAllocation{
			{ID: "a-dup", EmployeeID: "emp-1", LeaveTypeID: "lt-annual", PeriodID: "p-2024", Days: 1},
		})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

type sqliteUsers struct{}

func (sqliteUsers) GetUserByID(ctx context.Context, id string) (user.UserResponse, error) {
	return user.UserResponse{ID: id, FullName: "Jane Doe"}, nil
}

func (sqliteUsers) ListEmployees(ctx context.Context) ([]user.UserResponse, error) {
	return nil, nil
}

func TestLeaveAllocationService_AllocateTwiceIsIdempotent(t *testing.T) {
	db := newRepoTestDB(t)
	seedCatalog(t, db)
	sqlDB, _ := db.DB()
	ctx := context.Background()
	asOf := date(2024, 10, 1)

	svc := leaveallocation.NewService(
		sqlDB,
		leaveallocation.NewRepository(db),
		&fakePeriods{period: period2024},
		&fakeLeaveTypes{types: []leavetype.LeaveTypeResponse{
			{ID: "lt-annual", Name: "Annual", NumberOfDays: 24},
			{ID: "lt-sick", Name: "Sick", NumberOfDays: 10},
		}},
		sqliteUsers{},
	)

	first, err := svc.AllocateLeave(ctx, asOf, "emp-1")
	assert.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.AllocateLeave(ctx, asOf, "emp-1")
	assert.NoError(t, err)
	assert.Empty(t, second)

	resp, err := svc.GetEmployeeAllocations(ctx, asOf, "emp-1", "")
	assert.NoError(t, err)
	assert.Len(t, resp.Allocations, 2)
	assert.True(t, resp.IsCompletedAllocation)

	var annual leaveallocation.AllocationResponse
	for _, a := range resp.Allocations {
		if a.LeaveTypeID == "lt-annual" {
			annual = a
		}
	}
	assert.Equal(t, 6, annual.Days)
	assert.Equal(t, "Annual", annual.LeaveTypeName)

	current, err := svc.GetCurrentAllocation(ctx, asOf, "lt-annual", "emp-1")
	assert.NoError(t, err)
	assert.Equal(t, 6, current.Days)

	_, err = svc.GetCurrentAllocation(ctx, asOf, "lt-unknown", "emp-1")
	assert.ErrorIs(t, err, leaveallocationerrors.ErrNoCurrentAllocation)
}
