// Package payment charges a checkout total through a pluggable provider.
package payment

import (
	"context"
	"time"
)

type Charge struct {
	Amount      float64 // major units, already rounded
	Currency    string
	Description string
	Email       string
	UserID      string
}

type Receipt struct {
	Reference   string    `json:"reference"`
	Provider    string    `json:"provider"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	PaidAt      time.Time `json:"paid_at"`
}

type Backend interface {
	Charge(ctx context.Context, charge *Charge) (*Receipt, error)
	Refund(ctx context.Context, reference string) error
}
