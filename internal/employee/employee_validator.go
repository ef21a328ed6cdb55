package employee

import (
	"errors"
	"strings"

	"go-roster/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameRequired        = "Name is required"
	MsgDateOfBirthRequired = "Date of birth is required"
	MsgDateOfBirthInvalid  = "Date of birth must be a valid date"
	MsgStateRequired       = "State is required"
	MsgGenderInvalid       = "Gender must be Male, Female or Other"
)

type ValidationResult struct {
	Valid       bool
	FieldErrors map[string]string
}

// Validator checks candidate fields before they reach the repository.
// Every violated field is reported, not only the first.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(apperror.TagName)
	// neither tag is restricted, so registration cannot fail
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return IsValidState(fl.Field().String())
	})
	return &Validator{v: v}
}

func (v *Validator) Validate(f EmployeeFields) ValidationResult {
	res := ValidationResult{Valid: true, FieldErrors: map[string]string{}}

	err := v.v.Struct(f)
	if err == nil {
		return res
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		// only reachable when Struct is handed a non-struct
		res.Valid = false
		res.FieldErrors["_"] = err.Error()
		return res
	}

	for _, fe := range errs {
		res.FieldErrors[fe.Field()] = fieldMessage(fe)
	}
	res.Valid = len(res.FieldErrors) == 0
	return res
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return MsgNameRequired
	case "dateOfBirth":
		if fe.Tag() == "datetime" {
			return MsgDateOfBirthInvalid
		}
		return MsgDateOfBirthRequired
	case "state":
		return MsgStateRequired
	case "gender":
		return MsgGenderInvalid
	}
	return fe.Error()
}
