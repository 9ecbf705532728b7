package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

// AuthHandler leaves validation to the auth service so that field errors
// follow the same rules whichever front-end submits the form.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
//	@Summary		Sign in
//	@Description	Mocked sign-in: any well-formed credentials succeed. The token is bound to the session that requested it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body	models.LoginRequest	true	"Credentials"
//	@Success		200	{object}	models.AuthResponse	"Signed in"
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Failure		429	{object}	response.ErrorResponse	"Too many attempts"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.LoginRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err).WithDetail(err.Error()))
			return
		}

		resp, fields, err := h.authService.Login(r.Context(), sid, &req)
		switch {
		case !fields.Empty():
			response.ValidationError(w, fields)
			return
		case err != nil:
			logger.Warn("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("userId", resp.User.ID))
		response.Success(w, http.StatusOK, resp)
	}
}

// Signup godoc
//	@Summary		Create an account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			account	body	models.SignupRequest	true	"Account details"
//	@Success		201	{object}	models.AuthResponse	"Account created"
//	@Failure		400	{object}	response.ErrorResponse	"Validation error"
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SignupRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err).WithDetail(err.Error()))
			return
		}

		resp, fields, err := h.authService.Signup(r.Context(), sid, &req)
		switch {
		case !fields.Empty():
			response.ValidationError(w, fields)
			return
		case err != nil:
			logger.Warn("Signup failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User signed up", slog.String("userId", resp.User.ID))
		response.Success(w, http.StatusCreated, resp)
	}
}

// Logout godoc
//	@Summary		Sign out
//	@Description	Forgets the token and user of the session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]bool	"Signed out"
//	@Failure		500	{object}	response.ErrorResponse	"Storage error"
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		if err := h.authService.Logout(r.Context(), sid); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"logged_out": true})
	}
}

// Me godoc
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	models.User	"Signed-in user"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/auth/me [get]
func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}
