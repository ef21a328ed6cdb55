package autherrors

import (
	"net/http"

	"go-roster/internal/shared/apperror"
)

var (
	ErrLoginMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Please fill in all fields",
		http.StatusBadRequest,
	)
	ErrLoginInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Please enter a valid email",
		http.StatusBadRequest,
	)
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)
)
