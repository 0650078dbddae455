package leavetype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/leavetype"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	leavetypeMock "go-leave/internal/leavetype/mock"
	"go-leave/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   leavetype.Service
	repo      *leavetypeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := leavetypeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   leavetype.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	return appErr.Fields
}

func TestLeaveTypeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]leavetype.LeaveTypeResponse{{ID: "lt-1", Name: "Annual", NumberOfDays: 12}})
		deps.redismock.ExpectGet(leavetype.LeaveTypeAllKey).SetVal(string(cached))

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Annual", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(leavetype.LeaveTypeAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return([]leavetype.LeaveType{{ID: "lt-2", Name: "Sick", NumberOfDays: 10}}, nil)

		expected, _ := json.Marshal([]leavetype.LeaveTypeResponse{{ID: "lt-2", Name: "Sick", NumberOfDays: 10}})
		deps.redismock.ExpectSet(leavetype.LeaveTypeAllKey, expected, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Sick", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(leavetype.LeaveTypeAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.List(ctx)
		assert.Error(t, err)
	})
}

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "Annual", "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(leavetype.LeaveTypeAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, leavetype.LeaveTypeRequest{Name: " Annual ", NumberOfDays: 12})

		assert.NoError(t, err)
		assert.Equal(t, "Annual", resp.Name)
		assert.NotEmpty(t, resp.ID)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name is a field error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "annual", "").Return(true, nil)

		_, err := deps.service.Create(ctx, leavetype.LeaveTypeRequest{Name: "annual", NumberOfDays: 12})

		fields := validationFields(t, err)
		assert.Equal(t, "Name already exists", fields["name"])
	})

	t.Run("name and days out of range", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		_, err := deps.service.Create(ctx, leavetype.LeaveTypeRequest{Name: "Sic", NumberOfDays: 91})

		fields := validationFields(t, err)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "number_of_days")
	})

	t.Run("boundaries are accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "Sick", "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(leavetype.LeaveTypeAllKey).SetVal(0)

		_, err := deps.service.Create(ctx, leavetype.LeaveTypeRequest{Name: "Sick", NumberOfDays: 90})
		assert.NoError(t, err)
	})
}

func TestLeaveTypeService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping its own name succeeds", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "lt-1").Return(&leavetype.LeaveType{ID: "lt-1", Name: "Annual", NumberOfDays: 12}, nil)
		deps.repo.EXPECT().ExistsByName(ctx, "Annual", "lt-1").Return(false, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.Equal(t, 15, lt.NumberOfDays)
				return nil
			})
		deps.redismock.ExpectDel(leavetype.LeaveTypeAllKey).SetVal(1)

		resp, err := deps.service.Edit(ctx, "lt-1", leavetype.LeaveTypeRequest{Name: "Annual", NumberOfDays: 15})

		assert.NoError(t, err)
		assert.Equal(t, 15, resp.NumberOfDays)
	})

	t.Run("name used by another type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "lt-1").Return(&leavetype.LeaveType{ID: "lt-1", Name: "Annual", NumberOfDays: 12}, nil)
		deps.repo.EXPECT().ExistsByName(ctx, "Sick", "lt-1").Return(true, nil)

		_, err := deps.service.Edit(ctx, "lt-1", leavetype.LeaveTypeRequest{Name: "Sick", NumberOfDays: 12})

		fields := validationFields(t, err)
		assert.Equal(t, "Name already exists", fields["name"])
	})

	t.Run("missing leave type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Edit(ctx, "nope", leavetype.LeaveTypeRequest{Name: "Annual", NumberOfDays: 12})
		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})
}

func TestLeaveTypeService_Remove(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Delete(ctx, "unknown").Return(nil)
	deps.redismock.ExpectDel(leavetype.LeaveTypeAllKey).SetVal(0)

	assert.NoError(t, deps.service.Remove(ctx, "unknown"))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveTypeService_DaysExceedMaximum(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	deps.repo.EXPECT().FindByID(ctx, "lt-1").Return(&leavetype.LeaveType{ID: "lt-1", NumberOfDays: 12}, nil).Times(2)
	deps.repo.EXPECT().FindByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	exceeds, err := deps.service.DaysExceedMaximum(ctx, "lt-1", 13)
	assert.NoError(t, err)
	assert.True(t, exceeds)

	exceeds, err = deps.service.DaysExceedMaximum(ctx, "lt-1", 12)
	assert.NoError(t, err)
	assert.False(t, exceeds)

	_, err = deps.service.DaysExceedMaximum(ctx, "missing", 1)
	assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
}
