package leaveallocationerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrAllocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave allocation not found",
		http.StatusNotFound,
	)

	ErrNoCurrentAllocation = apperror.New(
		apperror.CodeNotFound,
		"Employee has no allocation for this leave type in the current period",
		http.StatusNotFound,
	)

	ErrAllocationConflict = apperror.New(
		apperror.CodeConflict,
		"Leave allocation already exists for this employee, leave type and period",
		http.StatusConflict,
	)
)
