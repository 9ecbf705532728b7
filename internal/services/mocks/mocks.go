// Package mocks holds testify mocks of the service interfaces for handler tests.
package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/digital-storefront/internal/cart"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

func fieldErrors(v any) errors.FieldErrors {
	f, _ := v.(errors.FieldErrors)
	return f
}

type MockProductService struct {
	mock.Mock
}

func NewMockProductService(t testingT) *MockProductService {
	m := &MockProductService{}
	register(&m.Mock, t)
	return m
}

func (m *MockProductService) ListProducts(ctx context.Context, q models.CatalogQuery) []models.Product {
	return m.Called(ctx, q).Get(0).([]models.Product)
}

func (m *MockProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *MockProductService) RelatedProducts(ctx context.Context, id int64) ([]models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Error(1)
}

func (m *MockProductService) FeaturedProducts(ctx context.Context) []models.Product {
	return m.Called(ctx).Get(0).([]models.Product)
}

func (m *MockProductService) Categories(ctx context.Context) []models.CategoryCount {
	return m.Called(ctx).Get(0).([]models.CategoryCount)
}

func (m *MockProductService) Testimonials(ctx context.Context) []models.Testimonial {
	return m.Called(ctx).Get(0).([]models.Testimonial)
}

func (m *MockProductService) FAQs(ctx context.Context) []models.FAQ {
	return m.Called(ctx).Get(0).([]models.FAQ)
}

func (m *MockProductService) PriceRange(ctx context.Context) models.PriceRange {
	return m.Called(ctx).Get(0).(models.PriceRange)
}

type MockCartService struct {
	mock.Mock
}

func NewMockCartService(t testingT) *MockCartService {
	m := &MockCartService{}
	register(&m.Mock, t)
	return m
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) models.CartSummary {
	return m.Called(ctx, sessionID).Get(0).(models.CartSummary)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (models.CartSummary, error) {
	args := m.Called(ctx, sessionID, req)
	return args.Get(0).(models.CartSummary), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) models.CartSummary {
	return m.Called(ctx, sessionID, productID, quantity).Get(0).(models.CartSummary)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, productID int64) models.CartSummary {
	return m.Called(ctx, sessionID, productID).Get(0).(models.CartSummary)
}

func (m *MockCartService) ClearCart(ctx context.Context, sessionID string) models.CartSummary {
	return m.Called(ctx, sessionID).Get(0).(models.CartSummary)
}

func (m *MockCartService) WithCart(ctx context.Context, sessionID string, fn func(*cart.Store) error) error {
	return m.Called(ctx, sessionID, fn).Error(0)
}

func (m *MockCartService) Sweep() int {
	return m.Called().Int(0)
}

type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService(t testingT) *MockAuthService {
	m := &MockAuthService{}
	register(&m.Mock, t)
	return m
}

func (m *MockAuthService) Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, errors.FieldErrors, error) {
	args := m.Called(ctx, sessionID, req)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, fieldErrors(args.Get(1)), args.Error(2)
}

func (m *MockAuthService) Signup(ctx context.Context, sessionID string, req *models.SignupRequest) (*models.AuthResponse, errors.FieldErrors, error) {
	args := m.Called(ctx, sessionID, req)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, fieldErrors(args.Get(1)), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	args := m.Called(ctx, sessionID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, sessionID, token string) (*models.User, error) {
	args := m.Called(ctx, sessionID, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func NewMockCheckoutService(t testingT) *MockCheckoutService {
	m := &MockCheckoutService{}
	register(&m.Mock, t)
	return m
}

func (m *MockCheckoutService) Quote(ctx context.Context, sessionID string) models.CheckoutQuote {
	return m.Called(ctx, sessionID).Get(0).(models.CheckoutQuote)
}

func (m *MockCheckoutService) Checkout(ctx context.Context, sessionID string, user *models.User, billing *models.BillingDetails) (*models.CheckoutResult, errors.FieldErrors, error) {
	args := m.Called(ctx, sessionID, user, billing)
	result, _ := args.Get(0).(*models.CheckoutResult)
	return result, fieldErrors(args.Get(1)), args.Error(2)
}

type MockDashboardService struct {
	mock.Mock
}

func NewMockDashboardService(t testingT) *MockDashboardService {
	m := &MockDashboardService{}
	register(&m.Mock, t)
	return m
}

func (m *MockDashboardService) Purchases(ctx context.Context, userID string) ([]models.PurchasedProduct, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]models.PurchasedProduct)
	return p, args.Error(1)
}

func (m *MockDashboardService) Profile(ctx context.Context, user *models.User) (*models.Profile, error) {
	args := m.Called(ctx, user)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func NewMockNotificationService(t testingT) *MockNotificationService {
	m := &MockNotificationService{}
	register(&m.Mock, t)
	return m
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, sessionID string) []models.Toast {
	return m.Called(ctx, sessionID).Get(0).([]models.Toast)
}

func (m *MockNotificationService) DismissNotification(ctx context.Context, sessionID, id string) error {
	return m.Called(ctx, sessionID, id).Error(0)
}
