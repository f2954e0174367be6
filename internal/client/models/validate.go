package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/pulse/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError is user input rejected before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return common.ErrorValidation.Error() + ": " + e.Msg
}

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }

// UserMessage is the text shown to the user.
func (e *ValidationError) UserMessage() string { return e.Msg }

// Validate checks v against its struct tags. The returned error is a
// *ValidationError describing the first failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Msg: err.Error()}
	}
	return &ValidationError{Msg: fieldMessage(verrs[0])}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address."
	case "min":
		if fe.Field() == "Password" {
			return "Password should be at least 6 characters"
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gte":
		if fe.Field() == "Quantity" {
			return "Minimum order is 1000 bottles."
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a delivery day", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
