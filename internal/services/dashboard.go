package service

import (
	"context"

	"github.com/aaravmahajanofficial/digital-storefront/internal/cart"
	"github.com/aaravmahajanofficial/digital-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/digital-storefront/internal/repositories"
)

type DashboardService interface {
	// Purchases is newest first. A product that left the catalog is kept with a nil Product.
	Purchases(ctx context.Context, userID string) ([]models.PurchasedProduct, error)
	Profile(ctx context.Context, user *models.User) (*models.Profile, error)
}

type dashboardService struct {
	purchases repository.PurchaseRepository
	lookup    cart.ProductLookup
}

func NewDashboardService(purchases repository.PurchaseRepository, lookup cart.ProductLookup) DashboardService {
	return &dashboardService{purchases: purchases, lookup: lookup}
}

func (s *dashboardService) Purchases(ctx context.Context, userID string) ([]models.PurchasedProduct, error) {
	purchases, err := s.purchases.ListPurchasesByUser(ctx, userID)
	if err != nil {
		return nil, errors.StorageError("Failed to fetch purchases").WithError(err)
	}

	out := make([]models.PurchasedProduct, 0, len(purchases))

	for _, p := range purchases {
		item := models.PurchasedProduct{Purchase: *p}
		if product, ok := s.lookup.Product(p.ProductID); ok {
			item.Product = &product
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *dashboardService) Profile(ctx context.Context, user *models.User) (*models.Profile, error) {
	if user == nil {
		return nil, errors.UnauthorizedError("Not signed in")
	}

	purchases, err := s.purchases.ListPurchasesByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.StorageError("Failed to fetch purchases").WithError(err)
	}

	u := *user
	profile := &models.Profile{User: &u, PurchaseCount: len(purchases)}
	owned := make(map[int64]struct{}, len(purchases))

	for _, p := range purchases {
		profile.TotalSpent += p.UnitPrice * float64(p.Quantity)
		owned[p.ProductID] = struct{}{}
	}

	profile.TotalSpent = checkout.RoundMinor(profile.TotalSpent)
	profile.ProductsOwned = len(owned)

	return profile, nil
}
