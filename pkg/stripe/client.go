package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/refund"
)

// Client is the subset of the Stripe API used to take one-off card payments.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency, description, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*stripe.PaymentIntent, error)
	RefundPayment(ctx context.Context, paymentIntentID string) (*stripe.Refund, error)
	// CheckBalance is a cheap authenticated call used by health checks.
	CheckBalance(ctx context.Context) error
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// PaymentIntent == "planned payment" waiting to be confirmed.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency, description, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	params.Context = ctx

	if receiptEmail != "" {
		params.ReceiptEmail = stripe.String(receiptEmail)
	}

	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return paymentintent.New(params)
}

func (s *stripeClient) ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
	}
	params.Context = ctx

	return paymentintent.Confirm(paymentIntentID, params)
}

func (s *stripeClient) RefundPayment(ctx context.Context, paymentIntentID string) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx

	return refund.New(params)
}

func (s *stripeClient) CheckBalance(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	_, err := balance.Get(params)

	return err
}

// 1. Create a Payment Intent
// -> "I want to charge $48.60 for these downloads"
// 2. Confirm it with a payment method
// -> "Charge this card now!"
