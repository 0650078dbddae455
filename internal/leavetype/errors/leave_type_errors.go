package leavetypeerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)

	ErrLeaveTypeInUse = apperror.New(
		apperror.CodeConflict,
		"Leave type is still referenced by allocations or requests",
		http.StatusConflict,
	)

	ErrLeaveTypeNameExists = apperror.New(
		apperror.CodeConflict,
		"Leave type with the same name already exists",
		http.StatusConflict,
	)
)
