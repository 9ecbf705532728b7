package repository_test

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/digital-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/digital-storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPurchaseRepoTest(t *testing.T) (repository.PurchaseRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewPurchaseRepository(db, storage.DialectPostgres)
	require.NotNil(t, repo, "NewPurchaseRepository should not return nil")

	return repo, mock
}

func samplePurchases(now time.Time) []*models.Purchase {
	return []*models.Purchase{
		{ID: "p-1", UserID: "u-1", ProductID: 1, Quantity: 2, UnitPrice: 49, PaymentRef: "pay_1", Status: models.PurchaseStatusCompleted, DownloadURL: "/downloads/1", PurchasedAt: now},
		{ID: "p-2", UserID: "u-1", ProductID: 3, Quantity: 1, UnitPrice: 29, PaymentRef: "pay_1", Status: models.PurchaseStatusCompleted, DownloadURL: "/downloads/3", PurchasedAt: now},
	}
}

func TestCreatePurchases(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`INSERT INTO purchases (id, user_id, product_id, quantity, unit_price, payment_ref, status, download_url, purchased_at)`)
	purchases := samplePurchases(time.Now())

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupPurchaseRepoTest(t)

		mock.ExpectBegin()
		for _, p := range purchases {
			mock.ExpectExec(expectedSQL).
				WithArgs(p.ID, p.UserID, p.ProductID, p.Quantity, p.UnitPrice, p.PaymentRef, string(p.Status), p.DownloadURL, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}
		mock.ExpectCommit()

		// Act
		err := repo.CreatePurchases(ctx, purchases)

		// Assert
		require.NoError(t, err, "CreatePurchases should succeed")
		assert.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - Nothing To Insert", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)

		err := repo.CreatePurchases(ctx, nil)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error Rolls Back", func(t *testing.T) {
		// Arrange
		repo, mock := setupPurchaseRepoTest(t)
		dbErr := errors.New("disk full")

		mock.ExpectBegin()
		mock.ExpectExec(expectedSQL).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(expectedSQL).WillReturnError(dbErr)
		mock.ExpectRollback()

		// Act
		err := repo.CreatePurchases(ctx, purchases)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr, "Error should wrap the original DB error")
		assert.Contains(t, err.Error(), "failed to insert purchase")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Begin Error", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		dbErr := errors.New("connection refused")

		mock.ExpectBegin().WillReturnError(dbErr)

		err := repo.CreatePurchases(ctx, purchases)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListPurchasesByUser(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`FROM purchases
		WHERE user_id = $1
		ORDER BY purchased_at DESC, id`)
	columns := []string{"id", "user_id", "product_id", "quantity", "unit_price", "payment_ref", "status", "download_url", "purchased_at"}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupPurchaseRepoTest(t)
		rows := sqlmock.NewRows(columns).
			AddRow("p-2", "u-1", int64(3), 1, 29.0, "pay_2", "completed", "/downloads/3", now).
			AddRow("p-1", "u-1", int64(1), 2, 49.0, "pay_1", "completed", "/downloads/1", now.Add(-time.Hour))

		mock.ExpectQuery(expectedSQL).WithArgs("u-1").WillReturnRows(rows)

		// Act
		got, err := repo.ListPurchasesByUser(ctx, "u-1")

		// Assert
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "p-2", got[0].ID)
		assert.Equal(t, models.PurchaseStatusCompleted, got[0].Status)
		assert.Equal(t, 2, got[1].Quantity)
		assert.Equal(t, now.Add(-time.Hour), got[1].PurchasedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Purchases", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		mock.ExpectQuery(expectedSQL).WithArgs("u-2").WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.ListPurchasesByUser(ctx, "u-2")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		dbErr := errors.New("timeout")
		mock.ExpectQuery(expectedSQL).WithArgs("u-1").WillReturnError(dbErr)

		got, err := repo.ListPurchasesByUser(ctx, "u-1")

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to list the purchases")
	})

	t.Run("Failure - Scan Error", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		rows := sqlmock.NewRows(columns).
			AddRow("p-1", "u-1", "not-a-number", 1, 29.0, "pay", "completed", "/d", now)
		mock.ExpectQuery(expectedSQL).WithArgs("u-1").WillReturnRows(rows)

		got, err := repo.ListPurchasesByUser(ctx, "u-1")

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "failed to scan the purchases")
	})
}

func TestMemoryPurchaseRepository(t *testing.T) {
	ctx := t.Context()
	repo := repository.NewMemoryPurchaseRepository()
	now := time.Now()

	older := samplePurchases(now.Add(-time.Minute))
	newer := samplePurchases(now)
	newer[0].ID, newer[1].ID = "p-3", "p-4"
	other := &models.Purchase{ID: "p-9", UserID: "u-2", PurchasedAt: now}

	require.NoError(t, repo.CreatePurchases(ctx, older))
	require.NoError(t, repo.CreatePurchases(ctx, append(newer, other)))

	got, err := repo.ListPurchasesByUser(ctx, "u-1")
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p-3", "p-4", "p-1", "p-2"}, ids)

	got[0].Quantity = 100
	again, _ := repo.ListPurchasesByUser(ctx, "u-1")
	assert.Equal(t, 2, again[0].Quantity, "returned purchases must be copies")

	none, err := repo.ListPurchasesByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpenSQLite(t *testing.T) {
	ctx := t.Context()

	cfg := &config.Config{Storage: config.Storage{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "store.db")}}

	db, err := repository.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, storage.DialectSQLite, db.Dialect)

	// Migrate is idempotent
	require.NoError(t, db.Migrate(ctx))

	repo := repository.NewPurchaseRepository(db.DB, db.Dialect)
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.CreatePurchases(ctx, samplePurchases(now.Add(-time.Hour))))
	require.NoError(t, repo.CreatePurchases(ctx, []*models.Purchase{
		{ID: "p-5", UserID: "u-1", ProductID: 7, Quantity: 1, UnitPrice: 15, PaymentRef: "pay_2", Status: models.PurchaseStatusCompleted, DownloadURL: "/downloads/7", PurchasedAt: now},
	}))

	got, err := repo.ListPurchasesByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "p-5", got[0].ID)
	assert.WithinDuration(t, now, got[0].PurchasedAt, time.Second)
	assert.InDelta(t, 49.0, got[1].UnitPrice, 1e-9)

	kv := storage.NewSQLStore(db.DB, db.Dialect)
	require.NoError(t, kv.Set(ctx, "session:abc:token", "tok"))
	v, found, err := kv.Get(ctx, "session:abc:token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok", v)
}

func TestOpenRejectsNonSQLDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: "memory"}}

	db, err := repository.Open(t.Context(), cfg)

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "not backed by sql")
}
