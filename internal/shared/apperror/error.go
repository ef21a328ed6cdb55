package apperror

import "fmt"

type AppError struct {
	Code       string // machine readable, e.g. NOT_FOUND
	Message    string // safe to show to the user
	HTTPStatus int
	Err        error // wrapped cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap returns nil when err is nil so call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Internal wraps an unexpected failure (storage, encoding) as a 500.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message, ErrInternal.HTTPStatus)
}
