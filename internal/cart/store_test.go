package cart_test

import (
	"testing"

	"github.com/aaravmahajanofficial/digital-storefront/internal/cart"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog map[int64]models.Product

func (f fakeCatalog) Product(id int64) (models.Product, bool) {
	p, ok := f[id]
	return p, ok
}

func setupStore() (*cart.Store, fakeCatalog) {
	products := fakeCatalog{
		1: {ID: 1, Title: "Template", Price: 10.00},
		2: {ID: 2, Title: "Course", Price: 25.00},
		3: {ID: 3, Title: "Icons", Price: 4.50},
	}

	return cart.NewStore(products), products
}

func TestAddToCart(t *testing.T) {
	t.Run("Same product twice yields one line with quantity 2", func(t *testing.T) {
		// Arrange
		store, products := setupStore()

		// Act
		store.AddToCart(products[1])
		store.AddToCart(products[1])

		// Assert
		require.Equal(t, 1, store.Len())
		assert.Equal(t, []models.CartItem{{ProductID: 1, Quantity: 2}}, store.Items())
		assert.Equal(t, 2, store.TotalItems())
	})

	t.Run("Totals follow a sequence of adds", func(t *testing.T) {
		store, products := setupStore()
		sequence := []int64{2, 1, 2, 3, 2, 1}

		for _, id := range sequence {
			store.AddToCart(products[id])
		}

		assert.Equal(t, len(sequence), store.TotalItems())
		assert.Equal(t, 3, store.Len())
		assert.Equal(t, 3, store.Quantity(2))
		assert.InDelta(t, 2*10.00+3*25.00+4.50, store.TotalPrice(), 1e-9)
	})

	t.Run("Preserves first-added order", func(t *testing.T) {
		store, products := setupStore()

		store.AddToCart(products[3])
		store.AddToCart(products[1])
		store.AddToCart(products[3])
		store.AddToCart(products[2])

		items := store.Items()
		require.Len(t, items, 3)
		assert.Equal(t, []int64{3, 1, 2}, []int64{items[0].ProductID, items[1].ProductID, items[2].ProductID})
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("Removes present line", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[1])
		store.AddToCart(products[2])

		store.RemoveFromCart(1)

		assert.False(t, store.Contains(1))
		assert.Equal(t, []models.CartItem{{ProductID: 2, Quantity: 1}}, store.Items())
	})

	t.Run("Absent id is a no-op", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[1])
		before := store.Items()

		store.RemoveFromCart(42)

		assert.Equal(t, before, store.Items())
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Sets quantity", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[2])

		store.UpdateQuantity(2, 5)

		assert.Equal(t, 5, store.Quantity(2))
		assert.Equal(t, 5, store.TotalItems())
	})

	t.Run("Zero removes", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[2])

		store.UpdateQuantity(2, 0)

		assert.False(t, store.Contains(2))
		assert.True(t, store.IsEmpty())
	})

	t.Run("Negative removes", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[2])

		store.UpdateQuantity(2, -3)

		assert.False(t, store.Contains(2))
	})

	t.Run("Absent id does not insert", func(t *testing.T) {
		store, _ := setupStore()

		store.UpdateQuantity(1, 4)

		assert.True(t, store.IsEmpty())
		assert.Equal(t, 0, store.Quantity(1))
	})
}

func TestClearCart(t *testing.T) {
	store, products := setupStore()
	store.AddToCart(products[1])
	store.AddToCart(products[2])

	store.ClearCart()

	assert.True(t, store.IsEmpty())
	assert.Equal(t, 0, store.TotalItems())
	assert.Zero(t, store.TotalPrice())
	assert.Empty(t, store.Summary().Lines)
}

func TestTotalPrice(t *testing.T) {
	t.Run("Sum of price times quantity", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[1])
		store.AddToCart(products[1])
		store.AddToCart(products[2])

		assert.InDelta(t, 45.00, store.TotalPrice(), 1e-9)
	})

	t.Run("Uses the live catalog price", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[1])
		store.AddToCart(products[2])

		p := products[1]
		p.Price = 12.00
		products[1] = p

		assert.InDelta(t, 37.00, store.TotalPrice(), 1e-9)
	})

	t.Run("Removed items no longer count", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[1])
		store.AddToCart(products[2])
		store.RemoveFromCart(2)

		p := products[2]
		p.Price = 1000
		products[2] = p

		assert.InDelta(t, 10.00, store.TotalPrice(), 1e-9)
	})

	t.Run("Unresolvable product contributes nothing", func(t *testing.T) {
		store, products := setupStore()
		store.AddToCart(products[1])
		store.AddToCart(products[3])
		delete(products, 3)

		assert.InDelta(t, 10.00, store.TotalPrice(), 1e-9)
		assert.Equal(t, 2, store.TotalItems())
	})
}

func TestSummary(t *testing.T) {
	store, products := setupStore()
	store.AddToCart(products[2])
	store.AddToCart(products[1])
	store.AddToCart(products[1])

	summary := store.Summary()

	require.Len(t, summary.Lines, 2)
	assert.Equal(t, int64(2), summary.Lines[0].Product.ID)
	assert.InDelta(t, 25.00, summary.Lines[0].LineTotal, 1e-9)
	assert.Equal(t, 2, summary.Lines[1].Quantity)
	assert.InDelta(t, 20.00, summary.Lines[1].LineTotal, 1e-9)
	assert.Equal(t, 3, summary.TotalItems)
	assert.InDelta(t, store.TotalPrice(), summary.TotalPrice, 1e-9)
}

func TestItemsReturnsCopy(t *testing.T) {
	store, products := setupStore()
	store.AddToCart(products[1])

	items := store.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, store.Quantity(1))
}
