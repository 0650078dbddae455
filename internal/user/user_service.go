package user

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/dateutil"
	"go-leave/internal/shared/dberr"
	usererrors "go-leave/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetUserByID(ctx context.Context, id string) (UserResponse, error)
	GetMe(ctx context.Context, actorID string) (UserResponse, error)
	ListEmployees(ctx context.Context) ([]UserResponse, error)
	Register(ctx context.Context, req RegisterUserRequest) (UserResponse, error)
	EnsureAdministrator(ctx context.Context, email, password string) (bool, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

// NewService wires the directory; a nil outbox skips employee_registered events.
func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

func (s *service) GetUserByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("find user failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) GetMe(ctx context.Context, actorID string) (UserResponse, error) {
	return s.GetUserByID(ctx, actorID)
}

func (s *service) ListEmployees(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindByRole(ctx, domain.RoleEmployee)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) Register(ctx context.Context, req RegisterUserRequest) (UserResponse, error) {
	s.logger.Debug("register user requested", zap.String("email", req.Email), zap.String("role", req.Role))

	u, err := buildUser(req)
	if err != nil {
		s.logger.Warn("register user validation failed", zap.Error(err))
		return UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByEmail(ctx, u.Email)
	if err != nil {
		s.logger.Error("register user email check failed", zap.Error(err))
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, usererrors.ErrUserAlreadyExists
	}

	if err := qtx.Create(ctx, u); err != nil {
		if dberr.IsUniqueViolation(err, "") {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		s.logger.Error("register user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	if u.Role == domain.RoleEmployee && s.outbox != nil {
		event, err := kafka.NewOutboxEvent(ctx, "employee", u.ID, events.EmployeeRegistered, events.EmployeeLifecycleTopic,
			events.EmployeeRegisteredEvent{
				EventType:  events.EmployeeRegistered,
				EmployeeID: u.ID,
				Email:      u.Email,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return UserResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("register user outbox failed", zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("register user success", zap.String("user_id", u.ID), zap.String("role", u.Role))
	return mapToResponse(*u), nil
}

// EnsureAdministrator creates the bootstrap administrator unless the email is taken.
func (s *service) EnsureAdministrator(ctx context.Context, email, password string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = s.Register(ctx, RegisterUserRequest{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     email,
		Password:  password,
		Role:      domain.RoleAdministrator,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func buildUser(req RegisterUserRequest) (*User, error) {
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.IsValidRole(role) {
		return nil, usererrors.ErrInvalidRole
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		d, err := dateutil.Parse(req.DateOfBirth)
		if err != nil {
			return nil, apperror.Validation(map[string]string{"date_of_birth": "Date Of Birth must use YYYY-MM-DD"})
		}
		dob = &d
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:          uuid.NewString(),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		DateOfBirth: dob,
		Password:    string(hashed),
		Role:        role,
	}, nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		Role:      u.Role,
	}
	if u.DateOfBirth != nil {
		resp.DateOfBirth = dateutil.Format(*u.DateOfBirth)
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
