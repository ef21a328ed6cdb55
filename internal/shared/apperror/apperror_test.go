package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-roster/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type detailed struct{ fields map[string]string }

func (d *detailed) Error() string { return "detailed" }
func (d *detailed) Details() any  { return d.fields }
func (d *detailed) Unwrap() error { return apperror.ErrInvalidInput }

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(fmt.Errorf("ctx: %w", apperror.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("disk on fire"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.ErrInternal.Message, got.Message)
	})

	t.Run("details are carried", func(t *testing.T) {
		got := apperror.ToHTTP(&detailed{fields: map[string]string{"name": "Name is required"}})
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, map[string]string{"name": "Name is required"}, got.Details)
	})
}

func TestWrapAndInternal(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))
	assert.NoError(t, apperror.Internal(nil))

	cause := errors.New("redis down")
	err := apperror.Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
}

func TestMapValidationError(t *testing.T) {
	type query struct {
		SortBy string `json:"sort_by" validate:"oneof=name state"`
		Format string `json:"format" validate:"required"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(apperror.TagName)

	err := apperror.MapValidationError(v.Struct(query{SortBy: "age", Format: "html"}))
	assert.EqualError(t, err, "Sort By is invalid")

	err = apperror.MapValidationError(v.Struct(query{SortBy: "name"}))
	assert.EqualError(t, err, "Format is required")

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
}
