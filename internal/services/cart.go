package service

import (
	"context"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/cart"
	"github.com/aaravmahajanofficial/digital-storefront/internal/errors"
	"github.com/aaravmahajanofficial/digital-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/notify"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) models.CartSummary
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (models.CartSummary, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) models.CartSummary
	RemoveItem(ctx context.Context, sessionID string, productID int64) models.CartSummary
	ClearCart(ctx context.Context, sessionID string) models.CartSummary
	// WithCart runs fn while holding the session's cart exclusively.
	WithCart(ctx context.Context, sessionID string, fn func(*cart.Store) error) error
	// Sweep drops carts idle for longer than the configured TTL and returns how many.
	Sweep() int
}

type cartEntry struct {
	mu       sync.Mutex
	store    *cart.Store
	lastUsed time.Time
}

type cartService struct {
	lookup  cart.ProductLookup
	feed    *notify.Feed
	idleTTL time.Duration
	now     func() time.Time

	mu    sync.Mutex
	carts map[string]*cartEntry
}

// NewCartService keeps one cart.Store per browser session. A nil feed
// disables toasts.
func NewCartService(lookup cart.ProductLookup, feed *notify.Feed, idleTTL time.Duration) CartService {
	return &cartService{
		lookup:  lookup,
		feed:    feed,
		idleTTL: idleTTL,
		now:     time.Now,
		carts:   make(map[string]*cartEntry),
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) models.CartSummary {
	var summary models.CartSummary

	_ = s.WithCart(ctx, sessionID, func(store *cart.Store) error {
		summary = store.Summary()
		return nil
	})

	return summary
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (models.CartSummary, error) {
	product, ok := s.lookup.Product(req.ProductID)
	if !ok {
		return models.CartSummary{}, errors.NotFoundError("Product not found")
	}

	var summary models.CartSummary

	_ = s.WithCart(ctx, sessionID, func(store *cart.Store) error {
		store.AddToCart(product)
		summary = store.Summary()
		return nil
	})

	metrics.CartMutation("add")
	s.sink(sessionID).Notify(ctx, product.Title+" added to cart", models.SeveritySuccess)

	return summary, nil
}

// UpdateQuantity on a product that is not in the cart changes nothing.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) models.CartSummary {
	var (
		summary models.CartSummary
		removed bool
	)

	_ = s.WithCart(ctx, sessionID, func(store *cart.Store) error {
		present := store.Contains(productID)
		store.UpdateQuantity(productID, quantity)
		removed = present && !store.Contains(productID)
		summary = store.Summary()
		return nil
	})

	metrics.CartMutation("update")

	if removed {
		s.notifyRemoved(ctx, sessionID, productID)
	}

	return summary
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, productID int64) models.CartSummary {
	var (
		summary models.CartSummary
		removed bool
	)

	_ = s.WithCart(ctx, sessionID, func(store *cart.Store) error {
		removed = store.Contains(productID)
		store.RemoveFromCart(productID)
		summary = store.Summary()
		return nil
	})

	metrics.CartMutation("remove")

	if removed {
		s.notifyRemoved(ctx, sessionID, productID)
	}

	return summary
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) models.CartSummary {
	var summary models.CartSummary

	_ = s.WithCart(ctx, sessionID, func(store *cart.Store) error {
		store.ClearCart()
		summary = store.Summary()
		return nil
	})

	metrics.CartMutation("clear")

	return summary
}

func (s *cartService) WithCart(ctx context.Context, sessionID string, fn func(*cart.Store) error) error {
	entry := s.entry(sessionID)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	err := fn(entry.store)

	s.mu.Lock()
	entry.lastUsed = s.now()
	s.mu.Unlock()

	return err
}

func (s *cartService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	dropped := 0

	for id, entry := range s.carts {
		if entry.lastUsed.Before(cutoff) {
			delete(s.carts, id)
			dropped++
		}
	}

	metrics.SetActiveCarts(len(s.carts))

	return dropped
}

func (s *cartService) entry(sessionID string) *cartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[sessionID]
	if !ok {
		entry = &cartEntry{store: cart.NewStore(s.lookup), lastUsed: s.now()}
		s.carts[sessionID] = entry
		metrics.SetActiveCarts(len(s.carts))
	}

	// Touched under s.mu so Sweep cannot drop a cart that is about to be used.
	entry.lastUsed = s.now()

	return entry
}

func (s *cartService) notifyRemoved(ctx context.Context, sessionID string, productID int64) {
	if p, ok := s.lookup.Product(productID); ok {
		s.sink(sessionID).Notify(ctx, p.Title+" removed from cart", models.SeverityInfo)
	}
}

func (s *cartService) sink(sessionID string) notify.Sink {
	if s.feed == nil {
		return notify.Discard
	}

	return s.feed.For(sessionID)
}
