package auth

import (
	"context"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
)

// LoginLimiter throttles sign-in attempts per email address.
type LoginLimiter interface {
	CheckLoginRateLimit(ctx context.Context, email string) (models.RateLimitDecision, error)
}

type allowAll struct{}

// AllowAll never throttles.
func AllowAll() LoginLimiter {
	return allowAll{}
}

func (allowAll) CheckLoginRateLimit(ctx context.Context, email string) (models.RateLimitDecision, error) {
	return models.RateLimitDecision{Allowed: true, Remaining: -1}, nil
}
