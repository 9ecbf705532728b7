package payment

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/checkout"
	"github.com/google/uuid"
)

const ProviderFake = "fake"

// FakeBackend succeeds once per call after a fixed delay. Cancelling ctx
// abandons the wait and nothing is charged.
type FakeBackend struct {
	delay time.Duration
	now   func() time.Time
}

func NewFakeBackend(delay time.Duration) *FakeBackend {
	return &FakeBackend{delay: delay, now: time.Now}
}

func (f *FakeBackend) Charge(ctx context.Context, charge *Charge) (*Receipt, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Receipt{
		Reference:   "fake_" + uuid.NewString(),
		Provider:    ProviderFake,
		AmountMinor: checkout.MinorUnits(charge.Amount),
		Currency:    charge.Currency,
		PaidAt:      f.now(),
	}, nil
}

func (f *FakeBackend) Refund(ctx context.Context, reference string) error {
	return nil
}
