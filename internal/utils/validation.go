package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

// looseEmail accepts anything shaped like a@b.c, the same check the
// storefront's sign-in form applies.
var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

// NewValidator returns a validator that reports fields by their json names and
// understands the loose_email tag.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil func
	_ = validate.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})

	return validate
}

// ValidateStruct returns one message per invalid field, or nil when data is
// valid. It never returns an error: a non-struct argument is reported under
// the empty field name.
func ValidateStruct(validate *validator.Validate, data any) appErrors.FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return appErrors.FieldErrors{"": "Invalid input"}
	}

	fields := make(appErrors.FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		// first failing rule per field wins
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	slog.Warn("User input validation failed", slog.String("error", fields.Error()))

	return fields
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "loose_email", "email":
		return "Please enter a valid email"
	case "eqfield":
		return "Passwords do not match"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// "first_name" -> "First name"
func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}

	words := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(words[:1]) + words[1:]
}
