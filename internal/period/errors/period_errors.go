package perioderrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"period not found",
		http.StatusNotFound,
	)
	ErrNoCurrentPeriod = apperror.New(
		apperror.CodeNotFound,
		"no period is configured for the current year",
		http.StatusNotFound,
	)
	ErrInvalidPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period id",
		http.StatusBadRequest,
	)
)
