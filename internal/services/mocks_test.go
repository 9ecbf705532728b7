package service_test

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/payment"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}

type mockPaymentBackend struct {
	mock.Mock
}

func (m *mockPaymentBackend) Charge(ctx context.Context, charge *payment.Charge) (*payment.Receipt, error) {
	args := m.Called(ctx, charge)
	r, _ := args.Get(0).(*payment.Receipt)
	return r, args.Error(1)
}

func (m *mockPaymentBackend) Refund(ctx context.Context, reference string) error {
	return m.Called(ctx, reference).Error(0)
}

type mockPurchaseRepo struct {
	mock.Mock
}

func (m *mockPurchaseRepo) CreatePurchases(ctx context.Context, purchases []*models.Purchase) error {
	return m.Called(ctx, purchases).Error(0)
}

func (m *mockPurchaseRepo) ListPurchasesByUser(ctx context.Context, userID string) ([]*models.Purchase, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]*models.Purchase)
	return p, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishPurchase(ctx context.Context, event *models.PurchaseEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) Send(ctx context.Context, msg *models.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockEmailService) GetSendGridClient() *sendgrid.Client {
	return nil
}

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) CheckLoginRateLimit(ctx context.Context, email string) (models.RateLimitDecision, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.RateLimitDecision), args.Error(1)
}
