package utils

import (
	"net/http"

	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON body into dest and validates it, writing a
// 400 response and returning false on failure.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err).WithDetail(err.Error()))
		return false
	}

	if fields := ValidateStruct(validate, dest); !fields.Empty() {
		response.Error(w, appErrors.FieldValidationError(fields))
		return false
	}

	return true
}
