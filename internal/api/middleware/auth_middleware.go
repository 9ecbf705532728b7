package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils/response"
)

type contextKey string

const UserContextKey = contextKey("user")

// Verifier resolves a bearer token presented by a session to its user.
type Verifier interface {
	Authenticate(ctx context.Context, sessionID, token string) (*models.User, error)
}

type AuthMiddleware struct {
	verifier Verifier
}

func NewAuthMiddleware(verifier Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		// Get token from Authorization header
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		sessionID := SessionIDFromContext(r.Context())
		if sessionID == "" {
			logger.Warn("Authenticated route without a session")
			response.Error(w, errors.UnauthorizedError("Session is required"))
			return
		}

		user, err := m.verifier.Authenticate(r.Context(), sessionID, tokenParts[1])
		if err != nil {
			response.Error(w, err)
			return
		}

		ctx := WithUser(r.Context(), user)

		requestScopedLogger := logger.With(slog.String("userId", user.ID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		requestScopedLogger.Debug("User authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok && user != nil
}
