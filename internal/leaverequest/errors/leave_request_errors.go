package leaverequesterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Leave request cannot move to the requested status",
		http.StatusConflict,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the requesting employee can cancel this leave request",
		http.StatusForbidden,
	)
)
