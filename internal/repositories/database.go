package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/storage"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Repository owns the SQL connection shared by the key-value store and the
// purchase repository.
type Repository struct {
	DB      *sql.DB
	Dialect storage.Dialect
}

// Open connects to the database selected by cfg.Storage.Driver (sqlite or
// postgres) and applies the schema.
func Open(ctx context.Context, cfg *config.Config) (*Repository, error) {
	var (
		dialect storage.Dialect
		dsn     string
	)

	switch cfg.Storage.Driver {
	case "sqlite":
		dialect, dsn = storage.DialectSQLite, cfg.Storage.Path
	case "postgres":
		dialect, dsn = storage.DialectPostgres, cfg.Database.GetDSN()
	default:
		return nil, fmt.Errorf("storage driver %q is not backed by sql", cfg.Storage.Driver)
	}

	db, err := otelsql.Open(string(dialect), dsn, otelsql.WithAttributes(attribute.String("db.system", string(dialect))))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == storage.DialectSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent sessions
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)
	}

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &Repository{DB: db, Dialect: dialect}
	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("Database ready", slog.String("driver", string(dialect)))

	return repo, nil
}

func (p *Repository) Migrate(ctx context.Context) error {
	if err := storage.Migrate(ctx, p.DB); err != nil {
		return err
	}

	return migratePurchases(ctx, p.DB)
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
