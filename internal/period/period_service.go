package period

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	perioderrors "go-leave/internal/period/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=period_service.go -destination=mock/period_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetAll(ctx context.Context) ([]PeriodResponse, error)
	GetCurrent(ctx context.Context, asOf time.Time) (PeriodResponse, error)
	GetCurrentPeriod(ctx context.Context, asOf time.Time) (*Period, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("period.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("period.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error) {
	s.logger.Debug("create period requested", zap.String("name", req.Name))

	p, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("create period validation failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create period begin tx failed", zap.Error(err))
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		s.logger.Error("create period persist failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create period commit failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	s.logger.Info("create period success", zap.String("period_id", p.ID))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PeriodResponse, error) {
	periods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(periods), nil
}

func (s *service) GetCurrent(ctx context.Context, asOf time.Time) (PeriodResponse, error) {
	p, err := s.GetCurrentPeriod(ctx, asOf)
	if err != nil {
		return PeriodResponse{}, err
	}
	return mapToResponse(*p), nil
}

// GetCurrentPeriod fails with ErrNoCurrentPeriod when the year has no period yet.
func (s *service) GetCurrentPeriod(ctx context.Context, asOf time.Time) (*Period, error) {
	p, err := s.repo.FindCurrent(ctx, asOf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("no current period", zap.Int("year", asOf.Year()))
			return nil, perioderrors.ErrNoCurrentPeriod
		}
		s.logger.Error("find current period failed", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func validateCreateRequest(req CreatePeriodRequest) (*Period, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 100 {
		fields["name"] = "Name must be between 1 and 100 characters"
	}

	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		fields["start_date"] = "Start Date must use YYYY-MM-DD"
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		fields["end_date"] = "End Date must use YYYY-MM-DD"
	}

	if len(fields) == 0 && !start.Before(end) {
		fields["end_date"] = "End Date must be after Start Date"
	}

	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	return &Period{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func mapToResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: dateutil.Format(p.StartDate),
		EndDate:   dateutil.Format(p.EndDate),
	}
}

func mapToListResponse(periods []Period) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = mapToResponse(p)
	}
	return res
}
