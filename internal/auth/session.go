package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/storage"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/go-playground/validator/v10"
)

const (
	TokenKey = "token"
	UserKey  = "user"
)

// SessionKeyPrefix namespaces one browser session's keys in the shared store.
func SessionKeyPrefix(sessionID string) string {
	return "session:" + sessionID
}

// Session holds the signed-in user of one browser session and mirrors it to a
// durable store under the token and user keys. Writes are last-write-wins.
type Session struct {
	id       string
	store    storage.KeyValueStore
	backend  Backend
	limiter  LoginLimiter
	validate *validator.Validate

	mu     sync.RWMutex
	user   *models.User
	closed bool
}

type Option func(*Session)

func WithLimiter(l LoginLimiter) Option {
	return func(s *Session) { s.limiter = l }
}

func WithValidator(v *validator.Validate) Option {
	return func(s *Session) { s.validate = v }
}

// Open creates the session container and rehydrates it from store. A session
// with only one of the two keys, or an unreadable user record, starts signed out.
func Open(ctx context.Context, id string, store storage.KeyValueStore, backend Backend, opts ...Option) (*Session, error) {
	s := &Session{
		id:      id,
		store:   storage.Namespace(store, SessionKeyPrefix(id)),
		backend: backend,
		limiter: AllowAll(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validate == nil {
		s.validate = utils.NewValidator()
	}

	token, hasToken, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return nil, errors.StorageError("Failed to load session").WithError(err)
	}

	raw, hasUser, err := s.store.Get(ctx, UserKey)
	if err != nil {
		return nil, errors.StorageError("Failed to load session").WithError(err)
	}

	if !hasToken || !hasUser {
		return s, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Discarding unreadable session user",
			slog.String("session_id", id), slog.Any("error", err))
		return s, nil
	}

	user.Token = token
	s.user = &user

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}

	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil
}

// Login validates req before calling the backend. Invalid input is reported as
// field errors with a nil error and leaves the session untouched.
func (s *Session) Login(ctx context.Context, req *models.LoginRequest) (*models.User, errors.FieldErrors, error) {
	if fields := utils.ValidateStruct(s.validate, req); !fields.Empty() {
		return nil, fields, nil
	}

	if err := s.checkLimit(ctx, req.Email); err != nil {
		return nil, nil, err
	}

	user, err := s.backend.Login(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, nil, err
	}

	return user, nil, nil
}

func (s *Session) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, errors.FieldErrors, error) {
	if fields := utils.ValidateStruct(s.validate, req); !fields.Empty() {
		return nil, fields, nil
	}

	user, err := s.backend.Signup(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, nil, err
	}

	return user, nil, nil
}

// Logout deletes both keys; logging out a signed-out session is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	if err := s.store.Delete(ctx, TokenKey, UserKey); err != nil {
		return errors.StorageError("Failed to clear session").WithError(err)
	}

	s.user = nil

	return nil
}

// Close disposes the container. Stored keys are kept so that the next Open
// rehydrates the same user.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.user = nil

	return nil
}

func (s *Session) checkLimit(ctx context.Context, email string) error {
	decision, err := s.limiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !decision.Allowed {
		return errors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", decision.RetryAfter))
	}

	return nil
}

func (s *Session) persist(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.InternalError("Failed to encode user").WithError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	if err := s.store.Set(ctx, TokenKey, user.Token); err != nil {
		return errors.StorageError("Failed to save session").WithError(err)
	}

	if err := s.store.Set(ctx, UserKey, string(raw)); err != nil {
		return errors.StorageError("Failed to save session").WithError(err)
	}

	u := *user
	s.user = &u

	return nil
}
