package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := Middleware(mux)

	t.Run("Success - Labels by route pattern", func(t *testing.T) {
		// Arrange
		counter := httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{id}")
		before := testutil.ToFloat64(counter)

		// Act
		for _, id := range []string{"1", "2", "3"} {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id, nil))
			require.Equal(t, http.StatusTeapot, rr.Code)
		}

		// Assert
		assert.InDelta(t, before+3, testutil.ToFloat64(counter), 0)
		assert.InDelta(t, 0, testutil.ToFloat64(httpRequestsInFlight), 0)
	})

	t.Run("Success - Unmatched route", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched")
		before := testutil.ToFloat64(counter)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
	})
}

func TestDomainCounters(t *testing.T) {
	t.Run("Cart mutations", func(t *testing.T) {
		before := testutil.ToFloat64(cartMutationsTotal.WithLabelValues("add"))

		CartMutation("add")
		CartMutation("add")

		assert.InDelta(t, before+2, testutil.ToFloat64(cartMutationsTotal.WithLabelValues("add")), 0)
	})

	t.Run("Checkout revenue only counts successes", func(t *testing.T) {
		before := testutil.ToFloat64(checkoutRevenue)

		Checkout("success", 10.8)
		Checkout("payment_failed", 99)

		assert.InDelta(t, before+10.8, testutil.ToFloat64(checkoutRevenue), 1e-9)
	})

	t.Run("Active carts gauge", func(t *testing.T) {
		SetActiveCarts(4)
		assert.InDelta(t, 4, testutil.ToFloat64(activeCarts), 0)
	})
}

func TestHandler(t *testing.T) {
	CatalogQuery(CacheHit)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `storefront_catalog_queries_total{cache="hit"}`))
}
