package auth

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Tokens signs and verifies the HS256 session tokens handed to clients.
type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokens(cfg *config.Security) *Tokens {
	return &Tokens{
		key: []byte(cfg.JWTKey),
		ttl: time.Duration(cfg.JWTExpiryHours) * time.Hour,
		now: time.Now,
	}
}

func (t *Tokens) Issue(user *models.User) (string, error) {
	now := t.now()

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (t *Tokens) Parse(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
