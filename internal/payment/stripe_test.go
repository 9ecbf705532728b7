package payment_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

type mockStripeClient struct {
	mock.Mock
}

func (m *mockStripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency, description, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, description, receiptEmail, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *mockStripeClient) ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *mockStripeClient) RefundPayment(ctx context.Context, paymentIntentID string) (*stripe.Refund, error) {
	args := m.Called(ctx, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Refund), args.Error(1)
}

func (m *mockStripeClient) CheckBalance(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestStripeBackendCharge(t *testing.T) {
	ctx := t.Context()
	charge := &payment.Charge{Amount: 48.60, Currency: "usd", Description: "Digital Storefront order", Email: "jane@example.com", UserID: "u-1"}
	metadata := map[string]string{"user_id": "u-1"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		client := new(mockStripeClient)
		backend := payment.NewStripeBackend(client, "pm_card_visa")

		client.On("CreatePaymentIntent", ctx, int64(4860), "usd", charge.Description, charge.Email, metadata).
			Return(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusRequiresPaymentMethod}, nil).Once()
		client.On("ConfirmPaymentIntent", ctx, "pi_1", "pm_card_visa").
			Return(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded}, nil).Once()

		// Act
		receipt, err := backend.Charge(ctx, charge)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "pi_1", receipt.Reference)
		assert.Equal(t, payment.ProviderStripe, receipt.Provider)
		assert.Equal(t, int64(4860), receipt.AmountMinor)
		client.AssertExpectations(t)
	})

	t.Run("Failure - Card Declined", func(t *testing.T) {
		client := new(mockStripeClient)
		backend := payment.NewStripeBackend(client, "pm_card_visa")
		declined := &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."}

		client.On("CreatePaymentIntent", ctx, int64(4860), "usd", charge.Description, charge.Email, metadata).
			Return(&stripe.PaymentIntent{ID: "pi_2"}, nil).Once()
		client.On("ConfirmPaymentIntent", ctx, "pi_2", "pm_card_visa").Return(nil, declined).Once()

		receipt, err := backend.Charge(ctx, charge)

		assert.Nil(t, receipt)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusPaymentRequired, appErr.StatusCode)
		assert.Equal(t, "Your card was declined.", appErr.Message)
		client.AssertExpectations(t)
	})

	t.Run("Failure - Not Succeeded", func(t *testing.T) {
		client := new(mockStripeClient)
		backend := payment.NewStripeBackend(client, "pm_card_visa")

		client.On("CreatePaymentIntent", ctx, int64(4860), "usd", charge.Description, charge.Email, metadata).
			Return(&stripe.PaymentIntent{ID: "pi_3"}, nil).Once()
		client.On("ConfirmPaymentIntent", ctx, "pi_3", "pm_card_visa").
			Return(&stripe.PaymentIntent{ID: "pi_3", Status: stripe.PaymentIntentStatusRequiresAction}, nil).Once()

		_, err := backend.Charge(ctx, charge)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePaymentFailed, appErr.Code)
		assert.Contains(t, appErr.Detail, "requires_action")
	})

	t.Run("Failure - API Unavailable", func(t *testing.T) {
		client := new(mockStripeClient)
		backend := payment.NewStripeBackend(client, "pm_card_visa")

		client.On("CreatePaymentIntent", ctx, int64(4860), "usd", charge.Description, charge.Email, metadata).
			Return(nil, errors.New("connection reset")).Once()

		_, err := backend.Charge(ctx, charge)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		client.AssertNotCalled(t, "ConfirmPaymentIntent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Zero Amount", func(t *testing.T) {
		client := new(mockStripeClient)
		backend := payment.NewStripeBackend(client, "pm_card_visa")

		_, err := backend.Charge(ctx, &payment.Charge{Amount: 0, Currency: "usd"})

		require.Error(t, err)
		client.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStripeBackendRefund(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		client := new(mockStripeClient)
		client.On("RefundPayment", ctx, "pi_1").Return(&stripe.Refund{ID: "re_1"}, nil).Once()

		err := payment.NewStripeBackend(client, "pm").Refund(ctx, "pi_1")

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		client := new(mockStripeClient)
		client.On("RefundPayment", ctx, "pi_1").Return(nil, errors.New("boom")).Once()

		err := payment.NewStripeBackend(client, "pm").Refund(ctx, "pi_1")

		require.Error(t, err)
	})
}
