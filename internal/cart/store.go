// Package cart holds the line items of one browser session's shopping cart.
package cart

import (
	"slices"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
)

// ProductLookup resolves a product id against the live catalog.
type ProductLookup interface {
	Product(id int64) (models.Product, bool)
}

// Store is an ordered set of line items, at most one per product id, in the
// order the products were first added. Totals are derived on every read from
// the live catalog price, never cached.
//
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	lookup ProductLookup
	items  []models.CartItem
}

func NewStore(lookup ProductLookup) *Store {
	return &Store{lookup: lookup}
}

// AddToCart increments the quantity of p, appending a new line with quantity 1
// when p is not in the cart yet.
func (s *Store) AddToCart(p models.Product) {
	if i := s.index(p.ID); i >= 0 {
		s.items[i].Quantity++
		return
	}

	s.items = append(s.items, models.CartItem{ProductID: p.ID, Quantity: 1})
}

// RemoveFromCart is a no-op when productID is absent.
func (s *Store) RemoveFromCart(productID int64) {
	if i := s.index(productID); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line; an absent productID is left absent.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	if i := s.index(productID); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

func (s *Store) ClearCart() {
	s.items = nil
}

// TotalItems is the sum of quantities, not the number of lines.
func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}

	return total
}

// TotalPrice sums live price × quantity. Lines whose product can no longer be
// resolved contribute nothing.
func (s *Store) TotalPrice() float64 {
	var total float64

	for _, item := range s.items {
		if p, ok := s.lookup.Product(item.ProductID); ok {
			total += p.Price * float64(item.Quantity)
		}
	}

	return total
}

func (s *Store) Items() []models.CartItem {
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Store) Contains(productID int64) bool {
	return s.index(productID) >= 0
}

// Quantity is 0 for an absent product.
func (s *Store) Quantity(productID int64) int {
	if i := s.index(productID); i >= 0 {
		return s.items[i].Quantity
	}

	return 0
}

// Summary resolves every line against the catalog. Unresolvable lines are
// skipped from Lines but still counted in TotalItems.
func (s *Store) Summary() models.CartSummary {
	summary := models.CartSummary{
		Lines:      make([]models.CartLine, 0, len(s.items)),
		TotalItems: s.TotalItems(),
	}

	for _, item := range s.items {
		p, ok := s.lookup.Product(item.ProductID)
		if !ok {
			continue
		}

		line := models.CartLine{
			Product:   p,
			Quantity:  item.Quantity,
			LineTotal: p.Price * float64(item.Quantity),
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalPrice += line.LineTotal
	}

	return summary
}

func (s *Store) index(productID int64) int {
	return slices.IndexFunc(s.items, func(item models.CartItem) bool {
		return item.ProductID == productID
	})
}
