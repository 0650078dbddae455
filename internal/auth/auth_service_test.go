package auth_test

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/auth"
	autherrors "go-leave/internal/auth/errors"
	authMock "go-leave/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (auth.Service, *authMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo, auth.TokenConfig{
		Secret:     testSecret,
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	})
	return svc, repo
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	return token.Claims.(jwt.MapClaims)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	cred := &auth.Credential{
		ID:        "u-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  string(hashed),
		Role:      "Supervisor",
	}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(cred, nil)

		pair, resp, err := svc.Login(ctx, "jane@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.Name)
		claims := parseClaims(t, pair.AccessToken)
		assert.Equal(t, "u-1", claims["user_id"])
		assert.Equal(t, "Supervisor", claims["role"])
		assert.Equal(t, "access", claims["typ"])
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(cred, nil)

		_, _, err := svc.Login(ctx, "jane@example.com", "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	cred := &auth.Credential{ID: "u-1", Email: "jane@example.com", Password: string(hashed), Role: "Employee"}

	t.Run("refresh token rotates pair", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(cred, nil)
		repo.EXPECT().GetByID(ctx, "u-1").Return(cred, nil)

		pair, _, err := svc.Login(ctx, "jane@example.com", "password123")
		assert.NoError(t, err)

		next, resp, err := svc.RefreshToken(ctx, pair.RefreshToken)
		assert.NoError(t, err)
		assert.Equal(t, "u-1", resp.ID)
		assert.Equal(t, "access", parseClaims(t, next.AccessToken)["typ"])
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(cred, nil)

		pair, _, err := svc.Login(ctx, "jane@example.com", "password123")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	repo.EXPECT().GetByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMe(ctx, "missing")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
