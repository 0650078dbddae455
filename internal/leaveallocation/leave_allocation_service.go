package leaveallocation

import (
	"context"
	"database/sql"
	"time"

	leaveallocationerrors "go-leave/internal/leaveallocation/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/period"
	"go-leave/internal/shared/dberr"
	"go-leave/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var monthsPerYear = decimal.NewFromInt(12)

//go:generate mockgen -source=leave_allocation_service.go -destination=mock/leave_allocation_service_mock.go -package=mock
type Service interface {
	AllocateLeave(ctx context.Context, asOf time.Time, employeeID string) ([]AllocationResponse, error)
	GetEmployeeAllocations(ctx context.Context, asOf time.Time, actorID, userID string) (EmployeeAllocationsResponse, error)
	GetEmployeeAllocation(ctx context.Context, id string) (AllocationDetailResponse, error)
	EditAllocation(ctx context.Context, id string, days int) (AllocationResponse, error)
	GetCurrentAllocation(ctx context.Context, asOf time.Time, leaveTypeID, employeeID string) (*LeaveAllocation, error)
	GetEmployees(ctx context.Context) ([]EmployeeSummary, error)
}

type PeriodResolver interface {
	GetCurrentPeriod(ctx context.Context, asOf time.Time) (*period.Period, error)
}

type LeaveTypeCatalog interface {
	List(ctx context.Context) ([]leavetype.LeaveTypeResponse, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (user.UserResponse, error)
	ListEmployees(ctx context.Context) ([]user.UserResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	periods    PeriodResolver
	leaveTypes LeaveTypeCatalog
	users      UserDirectory
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	periods PeriodResolver,
	leaveTypes LeaveTypeCatalog,
	users UserDirectory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaveallocation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveallocation.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		periods:    periods,
		leaveTypes: leaveTypes,
		users:      users,
		logger:     l,
	}
}

// ProratedDays grants floor(maxDays/12) for each month left in the period, counting asOf's month.
func ProratedDays(maxDays int, periodEnd, asOf time.Time) int {
	months := int(periodEnd.Month()) - int(asOf.Month()) + 1
	if months <= 0 {
		return 0
	}
	perMonth := decimal.NewFromInt(int64(maxDays)).Div(monthsPerYear).Floor()
	return int(perMonth.Mul(decimal.NewFromInt(int64(months))).IntPart())
}

// AllocateLeave creates current-period allocations for every leave type the employee
// has never been allocated in any period.
func (s *service) AllocateLeave(ctx context.Context, asOf time.Time, employeeID string) ([]AllocationResponse, error) {
	s.logger.Debug("allocate leave requested", zap.String("employee_id", employeeID))

	if _, err := s.users.GetUserByID(ctx, employeeID); err != nil {
		return nil, err
	}

	p, err := s.periods.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return nil, err
	}

	types, err := s.leaveTypes.List(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("allocate leave begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	allocatedIDs, err := qtx.AllocatedLeaveTypeIDs(ctx, employeeID)
	if err != nil {
		s.logger.Error("allocate leave lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	allocated := make(map[string]struct{}, len(allocatedIDs))
	for _, id := range allocatedIDs {
		allocated[id] = struct{}{}
	}

	var created []LeaveAllocation
	for _, lt := range types {
		if _, ok := allocated[lt.ID]; ok {
			continue
		}
		created = append(created, LeaveAllocation{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			LeaveTypeID: lt.ID,
			PeriodID:    p.ID,
			Days:        ProratedDays(lt.NumberOfDays, p.EndDate, asOf),
			LeaveType:   &leavetype.LeaveType{ID: lt.ID, Name: lt.Name, NumberOfDays: lt.NumberOfDays},
			Period:      p,
		})
	}

	if len(created) == 0 {
		s.logger.Info("allocate leave nothing to do", zap.String("employee_id", employeeID))
		return []AllocationResponse{}, nil
	}

	if err := qtx.CreateBatch(ctx, created); err != nil {
		if dberr.IsUniqueViolation(err, UniqueAllocationConstraint) {
			s.logger.Warn("allocate leave conflict", zap.String("employee_id", employeeID), zap.Error(err))
			return nil, leaveallocationerrors.ErrAllocationConflict
		}
		s.logger.Error("allocate leave persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("allocate leave commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("allocate leave success",
		zap.String("employee_id", employeeID),
		zap.String("period_id", p.ID),
		zap.Int("count", len(created)),
	)
	return mapToListResponse(created), nil
}

// GetEmployeeAllocations targets userID, or the actor when userID is empty.
func (s *service) GetEmployeeAllocations(ctx context.Context, asOf time.Time, actorID, userID string) (EmployeeAllocationsResponse, error) {
	targetID := userID
	if targetID == "" {
		targetID = actorID
	}

	employee, err := s.users.GetUserByID(ctx, targetID)
	if err != nil {
		return EmployeeAllocationsResponse{}, err
	}

	p, err := s.periods.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return EmployeeAllocationsResponse{}, err
	}

	allocations, err := s.repo.FindByEmployeeAndPeriod(ctx, targetID, p.ID)
	if err != nil {
		s.logger.Error("list employee allocations failed", zap.String("employee_id", targetID), zap.Error(err))
		return EmployeeAllocationsResponse{}, err
	}

	types, err := s.leaveTypes.List(ctx)
	if err != nil {
		return EmployeeAllocationsResponse{}, err
	}

	return EmployeeAllocationsResponse{
		Employee:              mapToEmployeeSummary(employee),
		PeriodID:              p.ID,
		PeriodName:            p.Name,
		Allocations:           mapToListResponse(allocations),
		IsCompletedAllocation: len(allocations) == len(types),
	}, nil
}

func (s *service) GetEmployeeAllocation(ctx context.Context, id string) (AllocationDetailResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AllocationDetailResponse{}, mapRepositoryError(err, leaveallocationerrors.ErrAllocationNotFound)
	}

	employee, err := s.users.GetUserByID(ctx, a.EmployeeID)
	if err != nil {
		return AllocationDetailResponse{}, err
	}

	return AllocationDetailResponse{
		AllocationResponse: mapToResponse(*a),
		Employee:           mapToEmployeeSummary(employee),
	}, nil
}

// EditAllocation overrides Days; range checks against the leave type belong to the caller.
func (s *service) EditAllocation(ctx context.Context, id string, days int) (AllocationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("edit allocation begin tx failed", zap.Error(err))
		return AllocationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AllocationResponse{}, mapRepositoryError(err, leaveallocationerrors.ErrAllocationNotFound)
	}

	if err := qtx.UpdateDays(ctx, id, days); err != nil {
		s.logger.Error("edit allocation persist failed", zap.String("leave_allocation_id", id), zap.Error(err))
		return AllocationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("edit allocation commit failed", zap.Error(err))
		return AllocationResponse{}, err
	}

	s.logger.Info("edit allocation success",
		zap.String("leave_allocation_id", id),
		zap.Int("previous_days", a.Days),
		zap.Int("days", days),
	)
	a.Days = days
	return mapToResponse(*a), nil
}

func (s *service) GetCurrentAllocation(ctx context.Context, asOf time.Time, leaveTypeID, employeeID string) (*LeaveAllocation, error) {
	p, err := s.periods.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindCurrent(ctx, employeeID, leaveTypeID, p.ID)
	if err != nil {
		return nil, mapRepositoryError(err, leaveallocationerrors.ErrNoCurrentAllocation)
	}
	return a, nil
}

func (s *service) GetEmployees(ctx context.Context) ([]EmployeeSummary, error) {
	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeSummary, len(employees))
	for i, e := range employees {
		res[i] = mapToEmployeeSummary(e)
	}
	return res, nil
}

func mapRepositoryError(err error, notFound error) error {
	if dberr.IsNotFound(err) {
		return notFound
	}
	return err
}

func mapToResponse(a LeaveAllocation) AllocationResponse {
	resp := AllocationResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		LeaveTypeID: a.LeaveTypeID,
		PeriodID:    a.PeriodID,
		Days:        a.Days,
	}
	if a.LeaveType != nil {
		resp.LeaveTypeName = a.LeaveType.Name
	}
	if a.Period != nil {
		resp.PeriodName = a.Period.Name
	}
	return resp
}

func mapToListResponse(allocations []LeaveAllocation) []AllocationResponse {
	res := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		res[i] = mapToResponse(a)
	}
	return res
}

func mapToEmployeeSummary(u user.UserResponse) EmployeeSummary {
	return EmployeeSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
	}
}
