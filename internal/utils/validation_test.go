package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	validate := utils.NewValidator()

	tests := []struct {
		name string
		data any
		want appErrors.FieldErrors
	}{
		{
			name: "Login - Valid",
			data: &models.LoginRequest{Email: "jane@example.com", Password: "x"},
			want: nil,
		},
		{
			name: "Login - Missing Fields",
			data: &models.LoginRequest{},
			want: appErrors.FieldErrors{"email": "Email is required", "password": "Password is required"},
		},
		{
			name: "Login - Malformed Email",
			data: &models.LoginRequest{Email: "jane@example", Password: "x"},
			want: appErrors.FieldErrors{"email": "Please enter a valid email"},
		},
		{
			name: "Signup - Short Password And Mismatch",
			data: &models.SignupRequest{Name: "Jane", Email: "jane@example.com", Password: "abc", ConfirmPassword: "abd"},
			want: appErrors.FieldErrors{
				"password":         "Password must be at least 6 characters",
				"confirm_password": "Passwords do not match",
			},
		},
		{
			name: "Billing - Missing Address And Bad Country",
			data: &models.BillingDetails{Email: "a@b.co", FirstName: "A", LastName: "B", City: "C", ZipCode: "1", Country: "USA"},
			want: appErrors.FieldErrors{
				"address": "Address is required",
				"country": "Country must be exactly 2 characters",
			},
		},
		{
			name: "Cart - Product Id Must Be Positive",
			data: &models.AddItemRequest{ProductID: -1},
			want: appErrors.FieldErrors{"product_id": "Product id must be greater than 0"},
		},
		{
			name: "Cart - Quantity Required",
			data: &models.UpdateQuantityRequest{},
			want: appErrors.FieldErrors{"quantity": "Quantity is required"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			got := utils.ValidateStruct(validate, tc.data)

			// Assert
			if tc.want == nil {
				assert.True(t, got.Empty())
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("Non-struct input does not panic", func(t *testing.T) {
		got := utils.ValidateStruct(validate, 42)
		assert.False(t, got.Empty())
	})
}

func TestParseAndValidate(t *testing.T) {
	validate := utils.NewValidator()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"jane@example.com","password":"pw"}`))
		rr := httptest.NewRecorder()

		var body models.LoginRequest

		// Act
		ok := utils.ParseAndValidate(req, rr, &body, validate)

		// Assert
		require.True(t, ok)
		assert.Equal(t, "jane@example.com", body.Email)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		rr := httptest.NewRecorder()

		var body models.LoginRequest
		ok := utils.ParseAndValidate(req, rr, &body, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		rr := httptest.NewRecorder()

		var body models.LoginRequest
		ok := utils.ParseAndValidate(req, rr, &body, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid JSON format")
	})

	t.Run("Failure - Field Errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
		rr := httptest.NewRecorder()

		var body models.LoginRequest
		ok := utils.ParseAndValidate(req, rr, &body, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{
			"success": false,
			"error": {
				"code": "VALIDATION_ERROR",
				"message": "Validation failed",
				"fields": {"email": "Please enter a valid email", "password": "Password is required"}
			}
		}`, rr.Body.String())
	})
}
