package employeeerrors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go-roster/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrValidation = apperror.New(
		apperror.CodeValidation,
		"Employee data is invalid",
		http.StatusBadRequest,
	)
	ErrStorageNotReady = apperror.New(
		apperror.CodeServiceUnavailable,
		"Roster storage is not ready",
		http.StatusServiceUnavailable,
	)
	ErrInvalidReportFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Report format must be html or pdf",
		http.StatusBadRequest,
	)
)

// ValidationError carries the per-field messages produced by the form
// validator. It unwraps to ErrValidation.
type ValidationError struct {
	FieldErrors map[string]string
}

func NewValidationError(fieldErrors map[string]string) *ValidationError {
	return &ValidationError{FieldErrors: fieldErrors}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) Details() any {
	return e.FieldErrors
}
