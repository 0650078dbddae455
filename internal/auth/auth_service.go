package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/dberr"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type service struct {
	repo   Repository
	tokens TokenConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	cred, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !dberr.IsNotFound(err) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return TokenPair{}, AuthResponse{}, err
		}
		s.logger.Info("login rejected", zap.String("reason", "unknown email"))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", cred.ID), zap.String("reason", "password mismatch"))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.issue(cred)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", cred.ID), zap.String("role", cred.Role))
	return pair, mapToResponse(cred), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.tokens.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	cred, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
		}
		return TokenPair{}, AuthResponse{}, err
	}

	pair, err := s.issue(cred)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, mapToResponse(cred), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	cred, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return AuthResponse{}, autherrors.ErrInvalidToken
		}
		return AuthResponse{}, err
	}
	return mapToResponse(cred), nil
}

func (s *service) issue(cred *Credential) (TokenPair, error) {
	access, err := s.generateToken(cred, tokenTypeAccess, s.tokens.AccessTTL)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(cred, tokenTypeRefresh, s.tokens.RefreshTTL)
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) generateToken(cred *Credential, typ string, expiry time.Duration) (string, error) {
	if s.tokens.Secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}
	claims := jwt.MapClaims{
		"user_id": cred.ID,
		"role":    cred.Role,
		"typ":     typ,
		"exp":     s.now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func mapToResponse(cred *Credential) AuthResponse {
	return AuthResponse{
		ID:    cred.ID,
		Email: cred.Email,
		Name:  strings.TrimSpace(cred.FirstName + " " + cred.LastName),
		Role:  cred.Role,
	}
}
