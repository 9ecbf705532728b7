package payment

import (
	"context"
	"errors"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/checkout"
	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	stripeClient "github.com/aaravmahajanofficial/digital-storefront/pkg/stripe"
	"github.com/stripe/stripe-go/v81"
)

const ProviderStripe = "stripe"

// StripeBackend creates and immediately confirms a PaymentIntent with a
// configured payment method.
type StripeBackend struct {
	client        stripeClient.Client
	paymentMethod string
	now           func() time.Time
}

func NewStripeBackend(client stripeClient.Client, paymentMethod string) *StripeBackend {
	return &StripeBackend{client: client, paymentMethod: paymentMethod, now: time.Now}
}

func (s *StripeBackend) Charge(ctx context.Context, charge *Charge) (*Receipt, error) {
	amount := checkout.MinorUnits(charge.Amount)
	if amount <= 0 {
		return nil, appErrors.BadRequestError("Nothing to charge")
	}

	intent, err := s.client.CreatePaymentIntent(ctx, amount, charge.Currency, charge.Description, charge.Email, map[string]string{
		"user_id": charge.UserID,
	})
	if err != nil {
		return nil, stripeError("Failed to create payment", err)
	}

	confirmed, err := s.client.ConfirmPaymentIntent(ctx, intent.ID, s.paymentMethod)
	if err != nil {
		return nil, stripeError("Failed to confirm payment", err)
	}

	if confirmed.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, appErrors.PaymentFailedError("Payment was not completed").
			WithDetail("payment intent status: " + string(confirmed.Status))
	}

	return &Receipt{
		Reference:   confirmed.ID,
		Provider:    ProviderStripe,
		AmountMinor: amount,
		Currency:    charge.Currency,
		PaidAt:      s.now(),
	}, nil
}

func (s *StripeBackend) Refund(ctx context.Context, reference string) error {
	if _, err := s.client.RefundPayment(ctx, reference); err != nil {
		return stripeError("Failed to refund payment", err)
	}

	return nil
}

// card errors are the customer's to fix; everything else is ours.
func stripeError(message string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		return appErrors.PaymentFailedError(stripeErr.Msg).WithError(err)
	}

	return appErrors.ThirdPartyError(message).WithError(err)
}
