package service_test

import (
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardPurchases(t *testing.T) {
	ctx := t.Context()
	at := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Success - Joins the catalog", func(t *testing.T) {
		// Arrange
		repo := new(mockPurchaseRepo)
		dashboardService := service.NewDashboardService(repo, loadCatalog(t))

		repo.On("ListPurchasesByUser", mock.Anything, "user-1").Return([]*models.Purchase{
			{ID: "p2", ProductID: 4, Quantity: 1, PurchasedAt: at},
			{ID: "p1", ProductID: 999, Quantity: 1, PurchasedAt: at.Add(-time.Hour)},
		}, nil).Once()

		// Act
		purchases, err := dashboardService.Purchases(ctx, "user-1")

		// Assert
		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, "Complete Marketing Course", purchases[0].Product.Title)
		assert.Nil(t, purchases[1].Product)
		assert.Equal(t, "p1", purchases[1].ID)
		repo.AssertExpectations(t)
	})

	t.Run("Success - No purchases", func(t *testing.T) {
		repo := new(mockPurchaseRepo)
		dashboardService := service.NewDashboardService(repo, loadCatalog(t))
		repo.On("ListPurchasesByUser", mock.Anything, "user-2").Return([]*models.Purchase{}, nil).Once()

		purchases, err := dashboardService.Purchases(ctx, "user-2")

		require.NoError(t, err)
		assert.NotNil(t, purchases)
		assert.Empty(t, purchases)
	})

	t.Run("Failure - Repository error", func(t *testing.T) {
		repo := new(mockPurchaseRepo)
		dashboardService := service.NewDashboardService(repo, loadCatalog(t))
		repo.On("ListPurchasesByUser", mock.Anything, "user-1").Return(nil, errors.New("db down")).Once()

		purchases, err := dashboardService.Purchases(ctx, "user-1")

		assert.Nil(t, purchases)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorageError, appErr.Code)
	})
}

func TestDashboardProfile(t *testing.T) {
	ctx := t.Context()
	repo := new(mockPurchaseRepo)
	dashboardService := service.NewDashboardService(repo, loadCatalog(t))

	repo.On("ListPurchasesByUser", mock.Anything, testUser.ID).Return([]*models.Purchase{
		{ProductID: 1, Quantity: 2, UnitPrice: 49},
		{ProductID: 3, Quantity: 1, UnitPrice: 29},
		{ProductID: 1, Quantity: 1, UnitPrice: 49},
	}, nil).Once()

	profile, err := dashboardService.Profile(ctx, testUser)

	require.NoError(t, err)
	assert.Equal(t, testUser.Email, profile.User.Email)
	assert.Equal(t, 3, profile.PurchaseCount)
	assert.Equal(t, 2, profile.ProductsOwned)
	assert.InDelta(t, 176.0, profile.TotalSpent, 1e-9)

	_, err = dashboardService.Profile(ctx, nil)
	assert.Error(t, err)
}
