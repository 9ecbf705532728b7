// Package auth is the mocked sign-in flow: a pluggable Backend that vouches
// for a user and a Session that remembers who is signed in.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type Backend interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
}

// FakeBackend accepts any well-formed credentials after a simulated delay.
type FakeBackend struct {
	tokens    *Tokens
	latency   time.Duration
	avatar    string
	sanitizer *bluemonday.Policy
}

func NewFakeBackend(tokens *Tokens, cfg *config.Auth) *FakeBackend {
	return &FakeBackend{
		tokens:    tokens,
		latency:   cfg.Latency,
		avatar:    cfg.Avatar,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (b *FakeBackend) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if err := wait(ctx, b.latency); err != nil {
		return nil, err
	}

	return b.issue(req.Email, nameFromEmail(req.Email))
}

func (b *FakeBackend) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if err := wait(ctx, b.latency); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(b.sanitizer.Sanitize(req.Name))
	if name == "" {
		name = nameFromEmail(req.Email)
	}

	return b.issue(req.Email, name)
}

func (b *FakeBackend) issue(email, name string) (*models.User, error) {
	email = strings.TrimSpace(email)

	user := &models.User{
		ID:     UserID(email),
		Email:  email,
		Name:   name,
		Avatar: b.avatar,
	}

	token, err := b.tokens.Issue(user)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}
	user.Token = token

	return user, nil
}

// UserID is stable per email address so that a user who signs in again finds
// their earlier purchases.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
