package repository

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/aaravmahajanofficial/digital-storefront/internal/storage"
	"github.com/aaravmahajanofficial/digital-storefront/internal/utils"
)

const purchasesSchema = `
CREATE TABLE IF NOT EXISTS purchases (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	product_id   BIGINT NOT NULL,
	quantity     INTEGER NOT NULL,
	unit_price   DOUBLE PRECISION NOT NULL,
	payment_ref  TEXT NOT NULL,
	status       TEXT NOT NULL,
	download_url TEXT NOT NULL,
	purchased_at TIMESTAMP NOT NULL
)`

const purchasesIndex = `CREATE INDEX IF NOT EXISTS idx_purchases_user ON purchases (user_id)`

type PurchaseRepository interface {
	CreatePurchases(ctx context.Context, purchases []*models.Purchase) error
	// ListPurchasesByUser returns newest first.
	ListPurchasesByUser(ctx context.Context, userID string) ([]*models.Purchase, error)
}

type purchaseRepository struct {
	DB      *sql.DB
	dialect storage.Dialect
}

func NewPurchaseRepository(db *sql.DB, dialect storage.Dialect) PurchaseRepository {
	return &purchaseRepository{DB: db, dialect: dialect}
}

func migratePurchases(ctx context.Context, db *sql.DB) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	for _, stmt := range []string{purchasesSchema, purchasesIndex} {
		if _, err := db.ExecContext(dbCtx, stmt); err != nil {
			return fmt.Errorf("failed to create purchases table: %w", err)
		}
	}

	return nil
}

// CreatePurchases inserts every purchase of one checkout in a single transaction.
func (r *purchaseRepository) CreatePurchases(ctx context.Context, purchases []*models.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := r.dialect.Rebind(`
		INSERT INTO purchases (id, user_id, product_id, quantity, unit_price, payment_ref, status, download_url, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)

	for _, p := range purchases {
		_, err := tx.ExecContext(dbCtx, query, p.ID, p.UserID, p.ProductID, p.Quantity, p.UnitPrice, p.PaymentRef, p.Status, p.DownloadURL, p.PurchasedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert purchase: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchases: %w", err)
	}

	return nil
}

func (r *purchaseRepository) ListPurchasesByUser(ctx context.Context, userID string) ([]*models.Purchase, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := r.dialect.Rebind(`
		SELECT id, user_id, product_id, quantity, unit_price, payment_ref, status, download_url, purchased_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY purchased_at DESC, id
	`)

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list the purchases: %w", err)
	}
	defer rows.Close()

	purchases := []*models.Purchase{}

	for rows.Next() {
		p := &models.Purchase{}

		err := rows.Scan(&p.ID, &p.UserID, &p.ProductID, &p.Quantity, &p.UnitPrice, &p.PaymentRef, &p.Status, &p.DownloadURL, &p.PurchasedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the purchases: %w", err)
		}

		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}

// memoryPurchaseRepository backs the memory and redis storage drivers, where
// no SQL database is configured.
type memoryPurchaseRepository struct {
	mu     sync.RWMutex
	byUser map[string][]models.Purchase
}

func NewMemoryPurchaseRepository() PurchaseRepository {
	return &memoryPurchaseRepository{byUser: make(map[string][]models.Purchase)}
}

func (m *memoryPurchaseRepository) CreatePurchases(ctx context.Context, purchases []*models.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range purchases {
		m.byUser[p.UserID] = append(m.byUser[p.UserID], *p)
	}

	return nil
}

func (m *memoryPurchaseRepository) ListPurchasesByUser(ctx context.Context, userID string) ([]*models.Purchase, error) {
	m.mu.RLock()
	stored := m.byUser[userID]
	out := make([]*models.Purchase, 0, len(stored))
	for i := range stored {
		p := stored[i]
		out = append(out, &p)
	}
	m.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b *models.Purchase) int {
		if c := b.PurchasedAt.Compare(a.PurchasedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}
