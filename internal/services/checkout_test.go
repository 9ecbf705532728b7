package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/notify"
	"github.com/aaravmahajanofficial/digital-storefront/internal/payment"
	repository "github.com/aaravmahajanofficial/digital-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testUser = &models.User{ID: "user-1", Email: "jane@example.com", Name: "jane"}

	validBilling = models.BillingDetails{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "1 Main St",
		City:      "Springfield",
		ZipCode:   "12345",
	}
)

func checkoutConfig() *config.Checkout {
	return &config.Checkout{TaxRate: 0.08, Currency: "usd", DownloadURL: "/downloads/"}
}

type checkoutFixture struct {
	carts     service.CartService
	payments  *mockPaymentBackend
	purchases *mockPurchaseRepo
	publisher *mockPublisher
	email     *mockEmailService
	feed      *notify.Feed
	service   service.CheckoutService
}

func setupCheckout(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		carts:     service.NewCartService(loadCatalog(t), nil, time.Hour),
		payments:  new(mockPaymentBackend),
		purchases: new(mockPurchaseRepo),
		publisher: new(mockPublisher),
		email:     new(mockEmailService),
		feed:      notify.NewFeed(time.Minute),
	}
	f.service = service.NewCheckoutService(f.carts, f.payments, f.purchases, f.publisher, f.email, f.feed, utils.NewValidator(), checkoutConfig())

	return f
}

func (f *checkoutFixture) fill(t *testing.T, ids ...int64) {
	t.Helper()

	for _, id := range ids {
		_, err := f.carts.AddItem(t.Context(), "s1", &models.AddItemRequest{ProductID: id})
		require.NoError(t, err)
	}
}

func TestQuote(t *testing.T) {
	f := setupCheckout(t)
	f.fill(t, 8, 8, 3) // 19 + 19 + 29

	quote := f.service.Quote(t.Context(), "s1")

	assert.Equal(t, 3, quote.Cart.TotalItems)
	assert.Equal(t, models.CheckoutSummary{Subtotal: 67, TaxRate: 0.08, Tax: 5.36, Total: 72.36}, quote.Summary)
}

func TestCheckout(t *testing.T) {
	receipt := &payment.Receipt{
		Reference: "fake_ref",
		Provider:  payment.ProviderFake,
		PaidAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("Success - Charges, records and clears", func(t *testing.T) {
		// Arrange
		f := setupCheckout(t)
		f.fill(t, 1, 3, 1)
		billing := validBilling

		f.payments.On("Charge", mock.Anything, mock.MatchedBy(func(c *payment.Charge) bool {
			return c.Amount == 137.16 && c.Currency == "usd" && c.UserID == testUser.ID
		})).Return(receipt, nil).Once()
		f.purchases.On("CreatePurchases", mock.Anything, mock.MatchedBy(func(p []*models.Purchase) bool {
			return len(p) == 2 && p[0].ProductID == 1 && p[0].Quantity == 2 && p[0].DownloadURL == "/downloads/1"
		})).Return(nil).Once()
		f.publisher.On("PublishPurchase", mock.Anything, mock.MatchedBy(func(e *models.PurchaseEvent) bool {
			return e.PaymentRef == "fake_ref" && len(e.Items) == 2 && e.Total == 137.16
		})).Return(nil).Once()
		f.email.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To == billing.Email && m.ToName == "Jane Doe"
		})).Return(nil).Once()

		// Act
		result, fields, err := f.service.Checkout(t.Context(), "s1", testUser, &billing)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, fields)
		assert.Equal(t, service.SuccessMessage, result.Message)
		assert.Equal(t, models.CheckoutSummary{Subtotal: 127, TaxRate: 0.08, Tax: 10.16, Total: 137.16}, result.Summary)
		assert.Len(t, result.Purchases, 2)
		assert.Equal(t, "US", billing.Country)
		assert.Empty(t, f.carts.GetCart(t.Context(), "s1").Lines)

		toasts := f.feed.List("s1")
		require.Len(t, toasts, 1)
		assert.Equal(t, service.SuccessMessage, toasts[0].Message)

		f.payments.AssertExpectations(t)
		f.purchases.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
		f.email.AssertExpectations(t)
	})

	t.Run("Failure - Invalid billing", func(t *testing.T) {
		f := setupCheckout(t)
		f.fill(t, 1)

		result, fields, err := f.service.Checkout(t.Context(), "s1", testUser, &models.BillingDetails{Email: "bad"})

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "Please enter a valid email", fields["email"])
		assert.Equal(t, "First name is required", fields["first_name"])
		assert.Equal(t, "Zip code is required", fields["zip_code"])
		f.payments.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		f := setupCheckout(t)
		billing := validBilling

		_, _, err := f.service.Checkout(t.Context(), "s1", testUser, &billing)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "Cart is empty", appErr.Message)
	})

	t.Run("Failure - Payment declined keeps the cart", func(t *testing.T) {
		f := setupCheckout(t)
		f.fill(t, 2)
		billing := validBilling

		f.payments.On("Charge", mock.Anything, mock.Anything).Return(nil, errors.New("card declined")).Once()

		_, _, err := f.service.Checkout(t.Context(), "s1", testUser, &billing)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePaymentFailed, appErr.Code)
		assert.Equal(t, 1, f.carts.GetCart(t.Context(), "s1").TotalItems)
		assert.Empty(t, f.feed.List("s1"))
	})

	t.Run("Failure - Storage error refunds", func(t *testing.T) {
		f := setupCheckout(t)
		f.fill(t, 2)
		billing := validBilling

		f.payments.On("Charge", mock.Anything, mock.Anything).Return(receipt, nil).Once()
		f.purchases.On("CreatePurchases", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		f.payments.On("Refund", mock.Anything, "fake_ref").Return(nil).Once()

		_, _, err := f.service.Checkout(t.Context(), "s1", testUser, &billing)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorageError, appErr.Code)
		assert.Equal(t, 1, f.carts.GetCart(t.Context(), "s1").TotalItems)
		f.payments.AssertExpectations(t)
		f.publisher.AssertNotCalled(t, "PublishPurchase", mock.Anything, mock.Anything)
	})

	t.Run("Success - Downstream failures are tolerated", func(t *testing.T) {
		f := setupCheckout(t)
		f.fill(t, 2)
		billing := validBilling

		f.payments.On("Charge", mock.Anything, mock.Anything).Return(receipt, nil).Once()
		f.purchases.On("CreatePurchases", mock.Anything, mock.Anything).Return(nil).Once()
		f.publisher.On("PublishPurchase", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		f.email.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid down")).Once()

		result, _, err := f.service.Checkout(t.Context(), "s1", testUser, &billing)

		require.NoError(t, err)
		assert.Equal(t, "fake_ref", result.PaymentRef)
	})
}

func TestCheckoutWithFakeBackends(t *testing.T) {
	// Arrange
	ctx := t.Context()
	c := loadCatalog(t)
	carts := service.NewCartService(c, nil, time.Hour)
	purchases := repository.NewMemoryPurchaseRepository()
	checkoutService := service.NewCheckoutService(carts, payment.NewFakeBackend(0), purchases, nil, nil, nil, utils.NewValidator(), checkoutConfig())

	_, err := carts.AddItem(ctx, "s1", &models.AddItemRequest{ProductID: 4})
	require.NoError(t, err)
	billing := validBilling

	// Act
	result, _, err := checkoutService.Checkout(ctx, "s1", testUser, &billing)
	require.NoError(t, err)

	_, _, again := checkoutService.Checkout(ctx, "s1", testUser, &billing)

	// Assert
	stored, err := purchases.ListPurchasesByUser(ctx, testUser.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, result.PaymentRef, stored[0].PaymentRef)
	assert.Error(t, again, "second checkout finds the cart empty")
}

func TestCheckoutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	carts := service.NewCartService(loadCatalog(t), nil, time.Hour)
	checkoutService := service.NewCheckoutService(carts, payment.NewFakeBackend(time.Hour), repository.NewMemoryPurchaseRepository(), nil, nil, nil, utils.NewValidator(), checkoutConfig())

	_, err := carts.AddItem(ctx, "s1", &models.AddItemRequest{ProductID: 4})
	require.NoError(t, err)
	billing := validBilling

	cancel()
	_, _, err = checkoutService.Checkout(ctx, "s1", testUser, &billing)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, carts.GetCart(t.Context(), "s1").TotalItems)
}
