package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/auth"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/storage"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, errors.FieldErrors, error)
	Signup(ctx context.Context, sessionID string, req *models.SignupRequest) (*models.AuthResponse, errors.FieldErrors, error)
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser is nil for a signed-out session.
	CurrentUser(ctx context.Context, sessionID string) (*models.User, error)
	// Authenticate accepts token only if it is the one stored for sessionID.
	Authenticate(ctx context.Context, sessionID, token string) (*models.User, error)
}

type authService struct {
	store    storage.KeyValueStore
	backend  auth.Backend
	tokens   *auth.Tokens
	limiter  auth.LoginLimiter
	validate *validator.Validate
}

func NewAuthService(store storage.KeyValueStore, backend auth.Backend, tokens *auth.Tokens, limiter auth.LoginLimiter, validate *validator.Validate) AuthService {
	if limiter == nil {
		limiter = auth.AllowAll()
	}

	return &authService{
		store:    store,
		backend:  backend,
		tokens:   tokens,
		limiter:  limiter,
		validate: validate,
	}
}

// open rehydrates the session container for one request; callers must Close it.
func (s *authService) open(ctx context.Context, sessionID string) (*auth.Session, error) {
	return auth.Open(ctx, sessionID, s.store, s.backend,
		auth.WithLimiter(s.limiter),
		auth.WithValidator(s.validate),
	)
}

func (s *authService) Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, errors.FieldErrors, error) {
	session, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	defer session.Close()

	user, fields, err := session.Login(ctx, req)

	return s.respond(ctx, "login", user, fields, err)
}

func (s *authService) Signup(ctx context.Context, sessionID string, req *models.SignupRequest) (*models.AuthResponse, errors.FieldErrors, error) {
	session, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	defer session.Close()

	user, fields, err := session.Signup(ctx, req)

	return s.respond(ctx, "signup", user, fields, err)
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	session, err := s.open(ctx, sessionID)
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Logout(ctx)
}

func (s *authService) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	session, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	return session.User(), nil
}

func (s *authService) Authenticate(ctx context.Context, sessionID, token string) (*models.User, error) {
	logger := middleware.LoggerFromContext(ctx)

	claims, err := s.tokens.Parse(token)
	if err != nil {
		logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	user, err := s.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if user == nil || user.Token != token || user.ID != claims.UserID {
		logger.Warn("Token does not belong to session", slog.String("userId", claims.UserID))
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	return user, nil
}

func (s *authService) respond(ctx context.Context, kind string, user *models.User, fields errors.FieldErrors, err error) (*models.AuthResponse, errors.FieldErrors, error) {
	logger := middleware.LoggerFromContext(ctx)

	switch {
	case !fields.Empty():
		metrics.AuthAttempt(kind, "invalid")
		return nil, fields, nil
	case err != nil:
		metrics.AuthAttempt(kind, "failed")

		if _, ok := errors.IsAppError(err); ok {
			return nil, nil, err
		}

		logger.Error("Authentication backend failed", slog.String("kind", kind), slog.Any("error", err))
		return nil, nil, errors.ThirdPartyError("Authentication failed").WithError(err)
	}

	metrics.AuthAttempt(kind, "success")
	logger.Info("User signed in", slog.String("kind", kind), slog.String("userId", user.ID))

	return &models.AuthResponse{User: user, Token: user.Token}, nil, nil
}
