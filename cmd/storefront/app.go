package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api"
	"github.com/aaravmahajanofficial/digital-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/auth"
	"github.com/aaravmahajanofficial/digital-storefront/internal/cache"
	"github.com/aaravmahajanofficial/digital-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/events"
	"github.com/aaravmahajanofficial/digital-storefront/internal/health"
	"github.com/aaravmahajanofficial/digital-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/digital-storefront/internal/notify"
	"github.com/aaravmahajanofficial/digital-storefront/internal/payment"
	repository "github.com/aaravmahajanofficial/digital-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/digital-storefront/internal/services"
	"github.com/aaravmahajanofficial/digital-storefront/internal/storage"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
	"github.com/aaravmahajanofficial/digital-storefront/pkg/sendgrid"
	stripeClient "github.com/aaravmahajanofficial/digital-storefront/pkg/stripe"
	"github.com/redis/go-redis/v9"
)

// app is the fully wired server. close releases connections in reverse order
// of acquisition.
type app struct {
	handler http.Handler
	carts   service.CartService
	feed    *notify.Feed
	closers []func() error
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Error("Error releasing resource", slog.String("error", err.Error()))
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	c, err := catalog.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Info("Catalog loaded", slog.Int("products", c.Len()), slog.String("version", c.Version()))

	// Redis setup
	var redisClient *redis.Client
	if cfg.RedisConnect.Enabled() {
		redisClient, err = repository.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, redisClient.Close)
	}

	// Storage setup
	var (
		kv        storage.KeyValueStore
		purchases repository.PurchaseRepository
		db        *sql.DB
	)

	switch cfg.Storage.Driver {
	case "sqlite", "postgres":
		repo, err := repository.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)

		db = repo.DB
		kv = storage.NewSQLStore(repo.DB, repo.Dialect)
		purchases = repository.NewPurchaseRepository(repo.DB, repo.Dialect)
	case "redis":
		kv = storage.NewRedisStore(redisClient)
		purchases = repository.NewMemoryPurchaseRepository()
	default:
		kv = storage.NewMemoryStore()
		purchases = repository.NewMemoryPurchaseRepository()
	}

	var queryCache cache.Cache
	if cfg.Cache.Driver == "redis" {
		queryCache = cache.NewRedisCache(redisClient, &cfg.Cache)
	} else {
		queryCache = cache.NewMemoryCache(&cfg.Cache)
	}

	limiter := auth.AllowAll()
	if redisClient != nil {
		limiter = repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	}

	// Payment setup
	var (
		payments payment.Backend
		stripe   stripeClient.Client
	)
	if cfg.Checkout.Provider == payment.ProviderStripe {
		stripe = stripeClient.NewStripeClient(cfg.Stripe.APIKey)
		payments = payment.NewStripeBackend(stripe, cfg.Stripe.PaymentMethod)
	} else {
		payments = payment.NewFakeBackend(cfg.Checkout.PaymentLatency)
	}

	var email sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		email = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	publisher := events.Nop()
	if cfg.RabbitMQ.URL != "" {
		amqpPublisher, err := events.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			return nil, err
		}
		publisher = amqpPublisher
	}
	a.closers = append(a.closers, publisher.Close)

	validate := utils.NewValidator()
	tokens := auth.NewTokens(&cfg.Security)
	a.feed = notify.NewFeed(cfg.Notifications.ToastTTL)

	productService := service.NewProductService(c, queryCache, cfg.Cache.DefaultTTL)
	a.carts = service.NewCartService(c, a.feed, cfg.Session.IdleTTL)
	authService := service.NewAuthService(kv, auth.NewFakeBackend(tokens, &cfg.Auth), tokens, limiter, validate)
	checkoutService := service.NewCheckoutService(a.carts, payments, purchases, publisher, email, a.feed, validate, &cfg.Checkout)
	dashboardService := service.NewDashboardService(purchases, c)
	notificationService := service.NewNotificationService(a.feed)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           db,
		StripeClient: stripe,
		CatalogSize:  c.Len,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build health checks: %w", err)
	}

	a.handler = api.NewRouter(&api.Handlers{
		Product:        handlers.NewProductHandler(productService),
		Cart:           handlers.NewCartHandler(a.carts, validate),
		Auth:           handlers.NewAuthHandler(authService),
		Checkout:       handlers.NewCheckoutHandler(checkoutService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Notification:   handlers.NewNotificationHandler(notificationService),
		AuthMiddleware: middleware.NewAuthMiddleware(authService),
		Metrics:        metrics.Handler(),
		Health:         healthHandler.Handler(),
	})

	slog.Info("Storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("cache", cfg.Cache.Driver),
		slog.String("payments", cfg.Checkout.Provider),
		slog.Bool("email", email != nil),
		slog.Bool("events", cfg.RabbitMQ.URL != ""),
	)

	return a, nil
}
