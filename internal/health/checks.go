package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	stripeClient "github.com/aaravmahajanofficial/digital-storefront/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Endpoints are the live dependencies probed by the health handler. A nil
// field disables its check.
type Endpoints struct {
	DB           *sql.DB
	StripeClient stripeClient.Client
	// CatalogSize reports the number of loaded products.
	CatalogSize func() int
}

// Checks lists the probes enabled by cfg. Postgres and Redis are probed through
// their own DSN so that a broken pool does not hide behind a cached connection.
func Checks(cfg *config.Config, endpoints *Endpoints) []health.Config {
	checks := []health.Config{
		{
			Name:    "catalog",
			Timeout: time.Second,
			Check: func(context.Context) error {
				if endpoints.CatalogSize == nil || endpoints.CatalogSize() == 0 {
					return fmt.Errorf("catalog is empty")
				}
				return nil
			},
		},
	}

	switch {
	case cfg.Storage.Driver == "postgres":
		checks = append(checks, health.Config{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	case endpoints.DB != nil:
		checks = append(checks, health.Config{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check: func(ctx context.Context) error {
				if err := endpoints.DB.PingContext(ctx); err != nil {
					return fmt.Errorf("failed to ping %s: %w", cfg.Storage.Driver, err)
				}
				return nil
			},
		})
	}

	if cfg.RedisConnect.Enabled() {
		checks = append(checks, health.Config{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	if cfg.Checkout.Provider == "stripe" {
		checks = append(checks, health.Config{
			Name:    "stripe",
			Timeout: 5 * time.Second,
			Check: func(ctx context.Context) error {
				if endpoints.StripeClient == nil {
					return fmt.Errorf("stripe client is not initialized")
				}
				if err := endpoints.StripeClient.CheckBalance(ctx); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}
				return nil
			},
		})
	}

	return checks
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "digital-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(Checks(cfg, endpoints)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
