package leavetype

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/dberr"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LeaveTypeAllKey = "leave_types:all"
	leaveTypeTTL    = 30 * time.Minute
)

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]LeaveTypeResponse, error)
	Get(ctx context.Context, id string) (LeaveTypeResponse, error)
	Create(ctx context.Context, req LeaveTypeRequest) (LeaveTypeResponse, error)
	Edit(ctx context.Context, id string, req LeaveTypeRequest) (LeaveTypeResponse, error)
	Remove(ctx context.Context, id string) error
	NameExists(ctx context.Context, name, excludingID string) (bool, error)
	DaysExceedMaximum(ctx context.Context, leaveTypeID string, requestedDays int) (bool, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) List(ctx context.Context) ([]LeaveTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LeaveTypeAllKey).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(LeaveTypeAllKey, func() (interface{}, error) {
		types, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(types)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, LeaveTypeAllKey, jsonData, leaveTypeTTL).Err(); err != nil {
					s.logger.Warn("cache leave types failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list leave types failed", zap.Error(err))
		return nil, err
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *service) Get(ctx context.Context, id string) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*lt), nil
}

func (s *service) Create(ctx context.Context, req LeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("create leave type requested", zap.String("name", req.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	name := strings.TrimSpace(req.Name)
	if err := s.validate(ctx, qtx, name, req.NumberOfDays, ""); err != nil {
		s.logger.Warn("create leave type validation failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	lt := &LeaveType{
		ID:           uuid.NewString(),
		Name:         name,
		NumberOfDays: req.NumberOfDays,
	}

	if err := qtx.Create(ctx, lt); err != nil {
		s.logger.Error("create leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create leave type success", zap.String("leave_type_id", lt.ID))
	return mapToResponse(*lt), nil
}

func (s *service) Edit(ctx context.Context, id string, req LeaveTypeRequest) (LeaveTypeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("edit leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	name := strings.TrimSpace(req.Name)
	if err := s.validate(ctx, qtx, name, req.NumberOfDays, id); err != nil {
		s.logger.Warn("edit leave type validation failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	lt.Name = name
	lt.NumberOfDays = req.NumberOfDays

	if err := qtx.Update(ctx, lt); err != nil {
		s.logger.Error("edit leave type persist failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("edit leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("edit leave type success", zap.String("leave_type_id", id))
	return mapToResponse(*lt), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("remove leave type begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("remove leave type failed", zap.String("leave_type_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("remove leave type commit failed", zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("remove leave type success", zap.String("leave_type_id", id))
	return nil
}

func (s *service) NameExists(ctx context.Context, name, excludingID string) (bool, error) {
	return s.repo.ExistsByName(ctx, strings.TrimSpace(name), excludingID)
}

// DaysExceedMaximum fails with ErrLeaveTypeNotFound for unknown ids.
func (s *service) DaysExceedMaximum(ctx context.Context, leaveTypeID string, requestedDays int) (bool, error) {
	lt, err := s.repo.FindByID(ctx, leaveTypeID)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return requestedDays > lt.NumberOfDays, nil
}

func (s *service) validate(ctx context.Context, repo Repository, name string, days int, excludingID string) error {
	fields := map[string]string{}

	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		fields["name"] = fmt.Sprintf("Name must be between %d and %d characters", MinNameLength, MaxNameLength)
	} else {
		exists, err := repo.ExistsByName(ctx, name, excludingID)
		if err != nil {
			return err
		}
		if exists {
			fields["name"] = "Name already exists"
		}
	}

	if days < MinDays || days > MaxDays {
		fields["number_of_days"] = fmt.Sprintf("Number Of Days must be between %d and %d", MinDays, MaxDays)
	}

	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, LeaveTypeAllKey).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache",
			zap.String("key", LeaveTypeAllKey),
			zap.Error(err),
		)
	}
}

func mapRepositoryError(err error) error {
	switch {
	case dberr.IsNotFound(err):
		return leavetypeerrors.ErrLeaveTypeNotFound
	case dberr.IsUniqueViolation(err, "uq_leave_type_name"):
		return leavetypeerrors.ErrLeaveTypeNameExists
	case dberr.IsForeignKeyViolation(err):
		return leavetypeerrors.ErrLeaveTypeInUse
	default:
		return err
	}
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:           lt.ID,
		Name:         lt.Name,
		NumberOfDays: lt.NumberOfDays,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapToResponse(lt)
	}
	return res
}
