package leaverequest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/i18n"
	"go-leave/internal/leaveallocation"
	leaveallocationerrors "go-leave/internal/leaveallocation/errors"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/period"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/dateutil"
	"go-leave/internal/shared/dberr"
	"go-leave/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_request_service.go -destination=mock/leave_request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, asOf time.Time, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	RequestDatesExceedAllocation(ctx context.Context, asOf time.Time, employeeID string, startDate, endDate time.Time, leaveTypeID string) (bool, error)
	Review(ctx context.Context, asOf time.Time, reviewerID, id string, approved bool) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, asOf time.Time, actorID, id string) (LeaveRequestResponse, error)
	GetEmployeeLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	AdminGetAllLeaveRequests(ctx context.Context) (AdminLeaveRequestsResponse, error)
	GetLeaveRequestForReview(ctx context.Context, id string) (LeaveRequestReviewResponse, error)
}

type PeriodResolver interface {
	GetCurrentPeriod(ctx context.Context, asOf time.Time) (*period.Period, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (user.UserResponse, error)
}

type Labeler interface {
	T(locale, id string, data map[string]any) string
}

type service struct {
	db          *sql.DB
	repo        Repository
	allocations leaveallocation.Repository
	periods     PeriodResolver
	users       UserDirectory
	outbox      kafka.OutboxRepository
	labels      Labeler
	logger      *zap.Logger
}

type Dependencies struct {
	DB          *sql.DB
	Repo        Repository
	Allocations leaveallocation.Repository
	Periods     PeriodResolver
	Users       UserDirectory
	Outbox      kafka.OutboxRepository
	Labels      Labeler
}

// NewService wires the workflow; Outbox and Labels are optional.
func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:          deps.DB,
		repo:        deps.Repo,
		allocations: deps.Allocations,
		periods:     deps.Periods,
		users:       deps.Users,
		outbox:      deps.Outbox,
		labels:      deps.Labels,
		logger:      l,
	}
}

// ParseRange validates a YYYY-MM-DD range; start may equal end.
func ParseRange(startDate, endDate string) (time.Time, time.Time, error) {
	fields := map[string]string{}

	start, err := dateutil.Parse(startDate)
	if err != nil {
		fields["start_date"] = "Start Date must use YYYY-MM-DD"
	}
	end, err := dateutil.Parse(endDate)
	if err != nil {
		fields["end_date"] = "End Date must use YYYY-MM-DD"
	}
	if len(fields) == 0 && start.After(end) {
		fields["end_date"] = "End Date must not be before Start Date"
	}

	if len(fields) > 0 {
		return time.Time{}, time.Time{}, apperror.Validation(fields)
	}
	return start, end, nil
}

// Create stores a Pending request and deducts its days from the current allocation in one transaction.
// It does not check the balance; callers run RequestDatesExceedAllocation first.
func (s *service) Create(ctx context.Context, asOf time.Time, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error) {
	s.logger.Debug("create leave request requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	start, end, err := ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave request validation failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	p, err := s.periods.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave request begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	atx := s.allocations.WithTx(tx)

	alloc, err := atx.FindCurrent(ctx, employeeID, req.LeaveTypeID, p.ID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return LeaveRequestResponse{}, leaveallocationerrors.ErrNoCurrentAllocation
		}
		s.logger.Error("create leave request allocation lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	lr := &LeaveRequest{
		ID:              uuid.NewString(),
		EmployeeID:      employeeID,
		LeaveTypeID:     req.LeaveTypeID,
		StartDate:       start,
		EndDate:         end,
		RequestComments: strings.TrimSpace(req.RequestComments),
		Status:          StatusPending,
		LeaveType:       alloc.LeaveType,
	}
	days := lr.NumberOfDays()

	if err := qtx.Create(ctx, lr); err != nil {
		s.logger.Error("create leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := atx.AdjustDays(ctx, alloc.ID, -days); err != nil {
		s.logger.Error("create leave request deduct failed",
			zap.String("leave_allocation_id", alloc.ID),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}

	if err := s.enqueue(ctx, tx, asOf, events.LeaveRequestCreated, lr, employeeID); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("create leave request success",
		zap.String("leave_request_id", lr.ID),
		zap.String("employee_id", employeeID),
		zap.String("leave_allocation_id", alloc.ID),
		zap.Int("days", days),
	)
	return s.mapToResponse(ctx, *lr), nil
}

// RequestDatesExceedAllocation is true iff the requested day count is above the current balance.
func (s *service) RequestDatesExceedAllocation(ctx context.Context, asOf time.Time, employeeID string, startDate, endDate time.Time, leaveTypeID string) (bool, error) {
	p, err := s.periods.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return false, err
	}

	alloc, err := s.allocations.FindCurrent(ctx, employeeID, leaveTypeID, p.ID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return false, leaveallocationerrors.ErrNoCurrentAllocation
		}
		return false, err
	}

	return dateutil.DaysBetween(startDate, endDate) > alloc.Days, nil
}

// Review approves or declines a Pending request. Declining returns the days to the allocation.
func (s *service) Review(ctx context.Context, asOf time.Time, reviewerID, id string, approved bool) (LeaveRequestResponse, error) {
	target := StatusDeclined
	if approved {
		target = StatusApproved
	}

	s.logger.Debug("review leave request requested",
		zap.String("leave_request_id", id),
		zap.String("reviewer_id", reviewerID),
		zap.String("target_status", target),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave request begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveRequestResponse{}, s.mapRepositoryError(err)
	}

	if !CanTransition(lr.Status, target) {
		s.logger.Warn("review leave request invalid transition",
			zap.String("leave_request_id", id),
			zap.String("from_status", lr.Status),
			zap.String("to_status", target),
		)
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidStatusTransition
	}

	from := lr.Status
	reviewedAt := asOf.UTC()
	lr.Status = target
	lr.ReviewerID = &reviewerID
	lr.ReviewedAt = &reviewedAt

	if err := qtx.UpdateStatus(ctx, lr, from); err != nil {
		if errors.Is(err, leaverequesterrors.ErrInvalidStatusTransition) {
			s.logger.Warn("review leave request status changed concurrently", zap.String("leave_request_id", id))
			return LeaveRequestResponse{}, err
		}
		s.logger.Error("review leave request persist failed", zap.String("leave_request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if !approved {
		if err := s.restoreDays(ctx, tx, asOf, lr); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := s.enqueue(ctx, tx, asOf, events.LeaveRequestReviewed, lr, reviewerID); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave request commit failed", zap.String("leave_request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("review leave request success",
		zap.String("leave_request_id", id),
		zap.String("status", lr.Status),
	)
	return s.mapToResponse(ctx, *lr), nil
}

// Cancel moves a Pending or Approved request to Canceled and always returns its days.
func (s *service) Cancel(ctx context.Context, asOf time.Time, actorID, id string) (LeaveRequestResponse, error) {
	s.logger.Debug("cancel leave request requested",
		zap.String("leave_request_id", id),
		zap.String("actor_id", actorID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave request begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveRequestResponse{}, s.mapRepositoryError(err)
	}

	if !CanTransition(lr.Status, StatusCanceled) {
		s.logger.Warn("cancel leave request invalid transition",
			zap.String("leave_request_id", id),
			zap.String("from_status", lr.Status),
		)
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidStatusTransition
	}

	from := lr.Status
	lr.Status = StatusCanceled

	if err := qtx.UpdateStatus(ctx, lr, from); err != nil {
		if errors.Is(err, leaverequesterrors.ErrInvalidStatusTransition) {
			s.logger.Warn("cancel leave request status changed concurrently", zap.String("leave_request_id", id))
			return LeaveRequestResponse{}, err
		}
		s.logger.Error("cancel leave request persist failed", zap.String("leave_request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := s.restoreDays(ctx, tx, asOf, lr); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := s.enqueue(ctx, tx, asOf, events.LeaveRequestCanceled, lr, actorID); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave request commit failed", zap.String("leave_request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("cancel leave request success", zap.String("leave_request_id", id))
	return s.mapToResponse(ctx, *lr), nil
}

func (s *service) GetEmployeeLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list employee leave requests failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(ctx, requests), nil
}

func (s *service) AdminGetAllLeaveRequests(ctx context.Context) (AdminLeaveRequestsResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return AdminLeaveRequestsResponse{}, err
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("count leave requests failed", zap.Error(err))
		return AdminLeaveRequestsResponse{}, err
	}

	resp := s.mapToListResponse(ctx, requests)

	names := map[string]string{}
	for i := range resp {
		name, ok := names[resp[i].EmployeeID]
		if !ok {
			if u, err := s.users.GetUserByID(ctx, resp[i].EmployeeID); err == nil {
				name = u.FullName
			} else {
				s.logger.Warn("resolve employee name failed", zap.String("employee_id", resp[i].EmployeeID), zap.Error(err))
			}
			names[resp[i].EmployeeID] = name
		}
		resp[i].EmployeeName = name
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	return AdminLeaveRequestsResponse{
		ApprovedRequests: counts[StatusApproved],
		PendingRequests:  counts[StatusPending],
		DeclinedRequests: counts[StatusDeclined],
		TotalRequests:    total,
		Requests:         resp,
	}, nil
}

func (s *service) GetLeaveRequestForReview(ctx context.Context, id string) (LeaveRequestReviewResponse, error) {
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveRequestReviewResponse{}, s.mapRepositoryError(err)
	}

	employee, err := s.users.GetUserByID(ctx, lr.EmployeeID)
	if err != nil {
		return LeaveRequestReviewResponse{}, err
	}

	resp := s.mapToResponse(ctx, *lr)
	resp.EmployeeName = employee.FullName
	return LeaveRequestReviewResponse{
		LeaveRequestResponse: resp,
		Employee: EmployeeSummary{
			ID:       employee.ID,
			FullName: employee.FullName,
			Email:    employee.Email,
		},
	}, nil
}

func (s *service) restoreDays(ctx context.Context, tx *sql.Tx, asOf time.Time, lr *LeaveRequest) error {
	p, err := s.periods.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return err
	}

	atx := s.allocations.WithTx(tx)
	alloc, err := atx.FindCurrent(ctx, lr.EmployeeID, lr.LeaveTypeID, p.ID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return leaveallocationerrors.ErrNoCurrentAllocation
		}
		s.logger.Error("restore leave days lookup failed", zap.String("leave_request_id", lr.ID), zap.Error(err))
		return err
	}

	if err := atx.AdjustDays(ctx, alloc.ID, lr.NumberOfDays()); err != nil {
		s.logger.Error("restore leave days failed",
			zap.String("leave_request_id", lr.ID),
			zap.String("leave_allocation_id", alloc.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, asOf time.Time, eventType string, lr *LeaveRequest, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	payload := events.LeaveRequestEvent{
		EventType:      eventType,
		LeaveRequestID: lr.ID,
		EmployeeID:     lr.EmployeeID,
		LeaveTypeID:    lr.LeaveTypeID,
		StartDate:      dateutil.Format(lr.StartDate),
		EndDate:        dateutil.Format(lr.EndDate),
		NumberOfDays:   lr.NumberOfDays(),
		Status:         lr.Status,
		ActorID:        actorID,
		OccurredAt:     asOf.UTC(),
	}
	if lr.LeaveType != nil {
		payload.LeaveTypeName = lr.LeaveType.Name
	}
	if lr.ReviewerID != nil {
		payload.ReviewerID = *lr.ReviewerID
	}

	event, err := kafka.NewOutboxEvent(ctx, "leave_request", lr.ID, eventType, events.LeaveRequestLifecycleTopic, payload)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("enqueue leave request event failed",
			zap.String("leave_request_id", lr.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) mapRepositoryError(err error) error {
	if dberr.IsNotFound(err) {
		return leaverequesterrors.ErrLeaveRequestNotFound
	}
	return err
}

func (s *service) label(ctx context.Context, status string) string {
	if s.labels == nil {
		return status
	}
	return s.labels.T(i18n.LocaleFromContext(ctx), "status_"+strings.ToLower(status), nil)
}

func (s *service) mapToResponse(ctx context.Context, lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		LeaveTypeID:     lr.LeaveTypeID,
		StartDate:       dateutil.Format(lr.StartDate),
		EndDate:         dateutil.Format(lr.EndDate),
		NumberOfDays:    lr.NumberOfDays(),
		RequestComments: lr.RequestComments,
		Status:          lr.Status,
		StatusLabel:     s.label(ctx, lr.Status),
	}
	if lr.LeaveType != nil {
		resp.LeaveTypeName = lr.LeaveType.Name
	}
	if lr.ReviewerID != nil {
		resp.ReviewerID = *lr.ReviewerID
	}
	if !lr.CreatedAt.IsZero() {
		resp.CreatedAt = lr.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func (s *service) mapToListResponse(ctx context.Context, requests []LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		res[i] = s.mapToResponse(ctx, lr)
	}
	return res
}
