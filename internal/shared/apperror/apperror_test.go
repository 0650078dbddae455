package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error with fields", func(t *testing.T) {
		err := apperror.Validation(map[string]string{"name": "Name is required"})

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusUnprocessableEntity, got.Status)
		assert.Equal(t, apperror.CodeValidation, got.Code)
		assert.Equal(t, map[string]string{"name": "Name is required"}, got.Details)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("rbac: %w", apperror.ErrUnauthorized)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusUnauthorized, got.Status)
		assert.Equal(t, apperror.CodeUnauthorized, got.Code)
		assert.Nil(t, got.Details)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})
}

func TestAppError_WithFieldsStillMatchesSentinel(t *testing.T) {
	sentinel := apperror.New(apperror.CodeValidation, "name taken", http.StatusUnprocessableEntity)

	err := sentinel.WithFields(map[string]string{"name": "taken"})

	assert.True(t, errors.Is(err, sentinel))
	assert.Nil(t, sentinel.Fields)
}
