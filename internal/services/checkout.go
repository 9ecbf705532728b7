package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/cart"
	"github.com/aaravmahajanofficial/digital-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/events"
	"github.com/aaravmahajanofficial/digital-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/notify"
	"github.com/aaravmahajanofficial/digital-storefront/internal/payment"
	repository "github.com/aaravmahajanofficial/digital-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/aaravmahajanofficial/digital-storefront/pkg/sendgrid"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	SuccessMessage = "Payment successful! Your products are now available in your dashboard."
	defaultCountry = "US"
)

type CheckoutService interface {
	Quote(ctx context.Context, sessionID string) models.CheckoutQuote
	// Checkout pays for the session's cart. Invalid billing details come back
	// as field errors with a nil error.
	Checkout(ctx context.Context, sessionID string, user *models.User, billing *models.BillingDetails) (*models.CheckoutResult, errors.FieldErrors, error)
}

type checkoutService struct {
	carts     CartService
	payments  payment.Backend
	purchases repository.PurchaseRepository
	publisher events.Publisher
	email     sendgrid.EmailService
	feed      *notify.Feed
	validate  *validator.Validate
	cfg       *config.Checkout
}

// NewCheckoutService wires the payment flow. email and feed may be nil.
func NewCheckoutService(
	carts CartService,
	payments payment.Backend,
	purchases repository.PurchaseRepository,
	publisher events.Publisher,
	email sendgrid.EmailService,
	feed *notify.Feed,
	validate *validator.Validate,
	cfg *config.Checkout,
) CheckoutService {
	if publisher == nil {
		publisher = events.Nop()
	}

	return &checkoutService{
		carts:     carts,
		payments:  payments,
		purchases: purchases,
		publisher: publisher,
		email:     email,
		feed:      feed,
		validate:  validate,
		cfg:       cfg,
	}
}

func (s *checkoutService) Quote(ctx context.Context, sessionID string) models.CheckoutQuote {
	cartSummary := s.carts.GetCart(ctx, sessionID)

	return models.CheckoutQuote{
		Cart:    cartSummary,
		Summary: checkout.Summarize(cartSummary.TotalPrice, s.cfg.TaxRate),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID string, user *models.User, billing *models.BillingDetails) (*models.CheckoutResult, errors.FieldErrors, error) {
	logger := middleware.LoggerFromContext(ctx)

	if fields := utils.ValidateStruct(s.validate, billing); !fields.Empty() {
		metrics.Checkout("invalid", 0)
		return nil, fields, nil
	}

	if billing.Country == "" {
		billing.Country = defaultCountry
	}

	var (
		result *models.CheckoutResult
		event  *models.PurchaseEvent
		lines  []models.CartLine
	)

	// The cart stays locked for the whole payment so that a second submit
	// from the same session waits and then finds the cart empty.
	err := s.carts.WithCart(ctx, sessionID, func(store *cart.Store) error {
		if store.IsEmpty() {
			return errors.BadRequestError("Cart is empty")
		}

		cartSummary := store.Summary()
		summary := checkout.Summarize(cartSummary.TotalPrice, s.cfg.TaxRate)

		receipt, err := s.payments.Charge(ctx, &payment.Charge{
			Amount:      summary.Total,
			Currency:    s.cfg.Currency,
			Description: fmt.Sprintf("Digital storefront order (%d items)", cartSummary.TotalItems),
			Email:       billing.Email,
			UserID:      user.ID,
		})
		if err != nil {
			metrics.Checkout("payment_failed", 0)
			if _, ok := errors.IsAppError(err); ok {
				return err
			}
			return errors.PaymentFailedError("Payment failed").WithError(err)
		}

		purchases := s.buildPurchases(user, cartSummary.Lines, receipt)

		if err := s.purchases.CreatePurchases(ctx, purchases); err != nil {
			metrics.Checkout("storage_failed", 0)
			logger.Error("Failed to record purchases, refunding",
				slog.String("payment_ref", receipt.Reference), slog.Any("error", err))

			if refundErr := s.payments.Refund(ctx, receipt.Reference); refundErr != nil {
				logger.Error("Refund failed", slog.String("payment_ref", receipt.Reference), slog.Any("error", refundErr))
			}

			return errors.StorageError("Failed to record purchase").WithError(err)
		}

		items := store.Items()
		store.ClearCart()

		result = &models.CheckoutResult{
			Summary:    summary,
			PaymentRef: receipt.Reference,
			Purchases:  make([]models.Purchase, 0, len(purchases)),
			Message:    SuccessMessage,
		}
		for _, p := range purchases {
			result.Purchases = append(result.Purchases, *p)
		}

		event = &models.PurchaseEvent{
			PaymentRef: receipt.Reference,
			UserID:     user.ID,
			Email:      billing.Email,
			Items:      items,
			Total:      summary.Total,
			OccurredAt: receipt.PaidAt,
		}
		lines = cartSummary.Lines

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.Checkout("success", result.Summary.Total)
	logger.Info("Checkout completed",
		slog.String("userId", user.ID),
		slog.String("payment_ref", result.PaymentRef),
		slog.Float64("total", result.Summary.Total))

	// Payment is final at this point; downstream failures are only logged.
	if err := s.publisher.PublishPurchase(ctx, event); err != nil {
		logger.Error("Failed to publish purchase event", slog.String("payment_ref", result.PaymentRef), slog.Any("error", err))
	}

	s.sendReceipt(ctx, billing, lines, result)

	if s.feed != nil {
		s.feed.For(sessionID).Notify(ctx, SuccessMessage, models.SeveritySuccess)
	}

	return result, nil, nil
}

func (s *checkoutService) buildPurchases(user *models.User, lines []models.CartLine, receipt *payment.Receipt) []*models.Purchase {
	purchases := make([]*models.Purchase, 0, len(lines))

	for _, line := range lines {
		purchases = append(purchases, &models.Purchase{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			ProductID:   line.Product.ID,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			PaymentRef:  receipt.Reference,
			Status:      models.PurchaseStatusCompleted,
			DownloadURL: fmt.Sprintf("%s/%d", strings.TrimRight(s.cfg.DownloadURL, "/"), line.Product.ID),
			PurchasedAt: receipt.PaidAt,
		})
	}

	return purchases
}

func (s *checkoutService) sendReceipt(ctx context.Context, billing *models.BillingDetails, lines []models.CartLine, result *models.CheckoutResult) {
	if s.email == nil {
		return
	}

	var body strings.Builder

	fmt.Fprintf(&body, "Hi %s,\n\nThanks for your order. Your downloads are ready in your dashboard.\n\n", billing.FirstName)
	for _, line := range lines {
		fmt.Fprintf(&body, "%s x%d  $%.2f\n", line.Product.Title, line.Quantity, checkout.RoundMinor(line.LineTotal))
	}
	fmt.Fprintf(&body, "\nSubtotal: $%.2f\nTax: $%.2f\nTotal: $%.2f\n\nReference: %s\n",
		result.Summary.Subtotal, result.Summary.Tax, result.Summary.Total, result.PaymentRef)

	err := s.email.Send(ctx, &models.EmailMessage{
		To:      billing.Email,
		ToName:  strings.TrimSpace(billing.FirstName + " " + billing.LastName),
		Subject: "Your order receipt",
		Content: body.String(),
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to send receipt email",
			slog.String("payment_ref", result.PaymentRef), slog.Any("error", err))
	}
}
