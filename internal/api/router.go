// Package api assembles the HTTP surface of the storefront.
package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aaravmahajanofficial/digital-storefront/docs"
)

type Handlers struct {
	Product      *handlers.ProductHandler
	Cart         *handlers.CartHandler
	Auth         *handlers.AuthHandler
	Checkout     *handlers.CheckoutHandler
	Dashboard    *handlers.DashboardHandler
	Notification *handlers.NotificationHandler

	AuthMiddleware *middleware.AuthMiddleware

	// Ops endpoints; nil ones are not mounted.
	Metrics http.Handler
	Health  http.Handler
}

// NewRouter registers every route and wraps the mux in, from the outside in:
// logging, session binding, metrics.
func NewRouter(h *Handlers) http.Handler {
	authenticate := h.AuthMiddleware.Authenticate

	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /api/v1/products", h.Product.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/featured", h.Product.FeaturedProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", h.Product.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/related", h.Product.RelatedProducts())
	routerMux.HandleFunc("GET /api/v1/categories", h.Product.Categories())
	routerMux.HandleFunc("GET /api/v1/testimonials", h.Product.Testimonials())
	routerMux.HandleFunc("GET /api/v1/faqs", h.Product.FAQs())

	routerMux.HandleFunc("GET /api/v1/cart", h.Cart.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", h.Cart.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", h.Cart.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", h.Cart.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", h.Cart.ClearCart())

	routerMux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login())
	routerMux.HandleFunc("POST /api/v1/auth/signup", h.Auth.Signup())
	routerMux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout())
	routerMux.HandleFunc("GET /api/v1/auth/me", authenticate(h.Auth.Me()))

	routerMux.HandleFunc("GET /api/v1/checkout/quote", h.Checkout.Quote())
	routerMux.HandleFunc("POST /api/v1/checkout", authenticate(h.Checkout.Checkout()))

	routerMux.HandleFunc("GET /api/v1/dashboard/purchases", authenticate(h.Dashboard.Purchases()))
	routerMux.HandleFunc("GET /api/v1/dashboard/profile", authenticate(h.Dashboard.Profile()))

	routerMux.HandleFunc("GET /api/v1/notifications", h.Notification.ListNotifications())
	routerMux.HandleFunc("DELETE /api/v1/notifications/{id}", h.Notification.DismissNotification())

	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if h.Metrics != nil {
		routerMux.Handle("GET /metrics", h.Metrics)
	}
	if h.Health != nil {
		routerMux.Handle("GET /health", h.Health)
	}

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)

	return handler
}
