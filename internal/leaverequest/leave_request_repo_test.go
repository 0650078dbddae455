package leaverequest_test

import (
	"context"
	"testing"

	leaveallocation "go-leave/internal/leaveallocation"
	leaverequest "go-leave/internal/leaverequest"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
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

	assert.NoError(t, db.AutoMigrate(
		&period.Period{},
		&leavetype.LeaveType{},
		&leaveallocation.LeaveAllocation{},
		&leaverequest.LeaveRequest{},
	))

	ctx := context.Background()
	assert.NoError(t, period.NewRepository(db).Create(ctx, period2024))
	assert.NoError(t, leavetype.NewRepository(db).Create(ctx, &leavetype.LeaveType{ID: "lt-annual", Name: "Annual", NumberOfDays: 24}))
	return db
}

func TestLeaveRequestRepository(t *testing.T) {
	db := newRepoTestDB(t)
	repo := leaverequest.NewRepository(db)
	ctx := context.Background()

	first := pendingRequest()
	second := pendingRequest()
	second.ID = "lr-2"
	second.StartDate, second.EndDate = date(2024, 11, 4), date(2024, 11, 5)
	other := pendingRequest()
	other.ID, other.EmployeeID, other.Status = "lr-3", "emp-2", leaverequest.StatusApproved

	for _, lr := range []*leaverequest.LeaveRequest{first, second, other} {
		assert.NoError(t, repo.Create(ctx, lr))
	}

	t.Run("find by id preloads leave type", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "lr-1")
		assert.NoError(t, err)
		assert.Equal(t, "Annual", got.LeaveType.Name)
		assert.Equal(t, 4, got.NumberOfDays())
	})

	t.Run("employee requests newest first", func(t *testing.T) {
		got, err := repo.FindByEmployee(ctx, "emp-1")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "lr-2", got[0].ID)
	})

	t.Run("update status writes review columns", func(t *testing.T) {
		reviewer := "sup-1"
		reviewedAt := asOf
		first.Status = leaverequest.StatusDeclined
		first.ReviewerID = &reviewer
		first.ReviewedAt = &reviewedAt
		assert.NoError(t, repo.UpdateStatus(ctx, first, leaverequest.StatusPending))

		got, err := repo.FindByID(ctx, "lr-1")
		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusDeclined, got.Status)
		assert.Equal(t, "sup-1", *got.ReviewerID)
	})

	t.Run("update status rejects a stale from status", func(t *testing.T) {
		stale := *first
		stale.Status = leaverequest.StatusCanceled
		err := repo.UpdateStatus(ctx, &stale, leaverequest.StatusPending)
		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidStatusTransition)

		got, err := repo.FindByID(ctx, "lr-1")
		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusDeclined, got.Status)
	})

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, counts[leaverequest.StatusPending])
		assert.Equal(t, 1, counts[leaverequest.StatusApproved])
		assert.Equal(t, 1, counts[leaverequest.StatusDeclined])
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "lr-404")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

type sqliteUsers struct{}

func (sqliteUsers) GetUserByID(ctx context.Context, id string) (user.UserResponse, error) {
	return user.UserResponse{ID: id, FullName: "Jane Doe"}, nil
}

func TestLeaveRequestService_BalanceRoundTrip(t *testing.T) {
	db := newRepoTestDB(t)
	sqlDB, _ := db.DB()
	ctx := context.Background()

	allocations := leaveallocation.NewRepository(db)
	assert.NoError(t, allocations.CreateBatch(ctx, []leaveallocation.LeaveAllocation{
		{ID: "a-1", EmployeeID: "emp-1", LeaveTypeID: "lt-annual", PeriodID: "p-2024", Days: 12},
	}))

	svc := leaverequest.NewService(leaverequest.Dependencies{
		DB:          sqlDB,
		Repo:        leaverequest.NewRepository(db),
		Allocations: allocations,
		Periods:     &fakePeriods{period: period2024},
		Users:       sqliteUsers{},
	})

	balance := func() int {
		a, err := allocations.FindByID(ctx, "a-1")
		assert.NoError(t, err)
		return a.Days
	}

	req := leaverequest.CreateLeaveRequestRequest{LeaveTypeID: "lt-annual", StartDate: "2024-10-07", EndDate: "2024-10-11"}

	t.Run("decline returns the days", func(t *testing.T) {
		created, err := svc.Create(ctx, asOf, "emp-1", req)
		assert.NoError(t, err)
		assert.Equal(t, 8, balance())

		declined, err := svc.Review(ctx, asOf, "sup-1", created.ID, false)
		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusDeclined, declined.Status)
		assert.Equal(t, 12, balance())
	})

	t.Run("approve keeps the deduction", func(t *testing.T) {
		created, err := svc.Create(ctx, asOf, "emp-1", req)
		assert.NoError(t, err)

		_, err = svc.Review(ctx, asOf, "sup-1", created.ID, true)
		assert.NoError(t, err)
		assert.Equal(t, 8, balance())

		_, err = svc.Cancel(ctx, asOf, "emp-1", created.ID)
		assert.NoError(t, err)
		assert.Equal(t, 12, balance())
	})

	t.Run("create then cancel", func(t *testing.T) {
		created, err := svc.Create(ctx, asOf, "emp-1", req)
		assert.NoError(t, err)
		assert.Equal(t, 8, balance())

		_, err = svc.Cancel(ctx, asOf, "emp-1", created.ID)
		assert.NoError(t, err)
		assert.Equal(t, 12, balance())

		_, err = svc.Cancel(ctx, asOf, "emp-1", created.ID)
		assert.Error(t, err)
		assert.Equal(t, 12, balance())
	})
}
