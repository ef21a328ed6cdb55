package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened form of an error as written into a response
// envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// detailer is implemented by errors that carry structured details, such as
// per-field validation messages.
type detailer interface {
	Details() any
}

// ToHTTP maps any error onto an HTTPError. Errors that are not AppErrors
// become a generic 500 so internal messages never reach the client.
func ToHTTP(err error) HTTPError {
	out := HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		out.Status = appErr.HTTPStatus
		out.Code = appErr.Code
		out.Message = appErr.Message
		if out.Status == 0 {
			out.Status = http.StatusInternalServerError
		}
	}

	var d detailer
	if errors.As(err, &d) {
		out.Details = d.Details()
	}
	return out
}
