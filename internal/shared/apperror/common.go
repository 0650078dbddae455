package apperror

import "net/http"

// Sentinels shared by middleware; domain packages declare their own under <pkg>/errors.
var (
	ErrUnauthorized = New(
		CodeUnauthorized,
		"Sign in to continue",
		http.StatusUnauthorized,
	)

	ErrInternal = New(
		CodeInternalError,
		"Something went wrong, please try again later",
		http.StatusInternalServerError,
	)
)
