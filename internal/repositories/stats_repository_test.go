package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository(t *testing.T) {
	t.Run("OrderCountsByStatus - Missing statuses are zero", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)

		mock.ExpectQuery(q("SELECT status, COUNT(*) FROM orders GROUP BY status")).
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("pending", 3).AddRow("delivered", 7))

		counts, err := repo.OrderCountsByStatus(t.Context())

		require.NoError(t, err)
		assert.Len(t, counts, 5)
		assert.Equal(t, 3, counts[models.OrderStatusPending])
		assert.Equal(t, 7, counts[models.OrderStatusDelivered])
		assert.Zero(t, counts[models.OrderStatusCancelled])
	})

	t.Run("Revenue - Excludes cancelled", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)

		mock.ExpectQuery(q("SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status <> $1")).
			WithArgs(models.OrderStatusCancelled).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(45998.5))

		revenue, err := repo.Revenue(t.Context())

		require.NoError(t, err)
		assert.InDelta(t, 45998.5, revenue, 0.001)
	})

	t.Run("Counts - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)
		since := time.Now().Truncate(24 * time.Hour)

		mock.ExpectQuery(q("FROM orders WHERE created_at >= $1")).WithArgs(since).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectQuery(q("FROM complaints WHERE status = $1")).WithArgs(models.ComplaintStatusOpen).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(q("FROM warranties WHERE status = $1")).WithArgs(models.WarrantyStatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		orders, err := repo.CountOrdersSince(t.Context(), since)
		require.NoError(t, err)
		complaints, err := repo.CountComplaints(t.Context(), models.ComplaintStatusOpen)
		require.NoError(t, err)
		warranties, err := repo.CountWarranties(t.Context(), models.WarrantyStatusActive)
		require.NoError(t, err)

		assert.Equal(t, 4, orders)
		assert.Equal(t, 2, complaints)
		assert.Equal(t, 11, warranties)
	})

	t.Run("Counts - Database error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)

		mock.ExpectQuery(q("FROM complaints")).WillReturnError(errors.New("connection reset"))

		_, err := repo.CountComplaints(t.Context(), models.ComplaintStatusOpen)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count")
	})

	t.Run("LowStockProducts - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)
		id := uuid.New()

		mock.ExpectQuery(q("WHERE status = $1 AND stock_quantity <= $2")).
			WithArgs(models.ProductStatusActive, models.LowStockThreshold).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sku", "stock_quantity"}).AddRow(id, "Cooling Pad Set", "PAD-01", 2))

		products, err := repo.LowStockProducts(t.Context(), models.LowStockThreshold)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, id, products[0].ID)
		assert.Equal(t, 2, products[0].StockQuantity)
	})

	t.Run("DailySales - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)
		since := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(q("date_trunc('day', created_at AT TIME ZONE $3)")).
			WithArgs(since, models.OrderStatusCancelled, "Asia/Kolkata").
			WillReturnRows(sqlmock.NewRows([]string{"day", "count", "sum"}).
				AddRow("2025-05-01", 2, 25998.0).
				AddRow("2025-05-03", 1, 899.0))

		days, err := repo.DailySales(t.Context(), since, "Asia/Kolkata")

		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "2025-05-03", days[1].Day)
		assert.Equal(t, 2, days[0].Orders)
		assert.InDelta(t, 899.0, days[1].Revenue, 0.001)
	})

	t.Run("TopProducts - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewStatsRepo(db)
		id := uuid.New()

		mock.ExpectQuery(q("FROM order_items oi")).WithArgs(models.OrderStatusCancelled, 5).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "units", "revenue"}).
				AddRow(id, "Tower Cooler 40L", 9, 80991.0))

		top, err := repo.TopProducts(t.Context(), 5)

		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, 9, top[0].UnitsSold)
		assert.Equal(t, "Tower Cooler 40L", top[0].ProductName)
	})
}
