package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
)

// DailySales is one aggregated day of non-cancelled orders. Day is the
// YYYY-MM-DD calendar date in the zone the query was bucketed in.
type DailySales struct {
	Day     string
	Orders  int
	Revenue float64
}

// StatsRepository answers the admin dashboard aggregates.
type StatsRepository interface {
	OrderCountsByStatus(ctx context.Context) (map[models.OrderStatus]int, error)
	Revenue(ctx context.Context) (float64, error)
	CountOrdersSince(ctx context.Context, since time.Time) (int, error)
	CountComplaints(ctx context.Context, status models.ComplaintStatus) (int, error)
	CountWarranties(ctx context.Context, status models.WarrantyStatus) (int, error)
	LowStockProducts(ctx context.Context, threshold int) ([]models.LowStockProduct, error)
	DailySales(ctx context.Context, since time.Time, zone string) ([]DailySales, error)
	TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error)
}

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepo(db *sql.DB) StatsRepository {
	return &statsRepository{DB: db}
}

func (r *statsRepository) OrderCountsByStatus(ctx context.Context) (map[models.OrderStatus]int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	defer rows.Close()

	counts := map[models.OrderStatus]int{
		models.OrderStatusPending:   0,
		models.OrderStatusConfirmed: 0,
		models.OrderStatusShipping:  0,
		models.OrderStatusDelivered: 0,
		models.OrderStatusCancelled: 0,
	}

	for rows.Next() {
		var (
			status models.OrderStatus
			count  int
		)

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan order count: %w", err)
		}

		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order counts: %w", err)
	}

	return counts, nil
}

func (r *statsRepository) Revenue(ctx context.Context) (float64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var revenue float64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status <> $1`,
		models.OrderStatusCancelled).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return revenue, nil
}

func (r *statsRepository) CountOrdersSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE created_at >= $1`, since)
}

func (r *statsRepository) CountComplaints(ctx context.Context, status models.ComplaintStatus) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM complaints WHERE status = $1`, status)
}

func (r *statsRepository) CountWarranties(ctx context.Context, status models.WarrantyStatus) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM warranties WHERE status = $1`, status)
}

func (r *statsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var n int
	if err := r.DB.QueryRowContext(dbCtx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}

	return n, nil
}

func (r *statsRepository) LowStockProducts(ctx context.Context, threshold int) ([]models.LowStockProduct, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, sku, stock_quantity
		FROM products
		WHERE status = $1 AND stock_quantity <= $2
		ORDER BY stock_quantity, name`

	rows, err := r.DB.QueryContext(dbCtx, query, models.ProductStatusActive, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	defer rows.Close()

	products := []models.LowStockProduct{}

	for rows.Next() {
		var p models.LowStockProduct

		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.StockQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan low stock product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate low stock products: %w", err)
	}

	return products, nil
}

func (r *statsRepository) DailySales(ctx context.Context, since time.Time, zone string) ([]DailySales, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT to_char(date_trunc('day', created_at AT TIME ZONE $3), 'YYYY-MM-DD') AS day,
			COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1 AND status <> $2
		GROUP BY day
		ORDER BY day`

	rows, err := r.DB.QueryContext(dbCtx, query, since, models.OrderStatusCancelled, zone)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily sales: %w", err)
	}
	defer rows.Close()

	var days []DailySales

	for rows.Next() {
		var d DailySales

		if err := rows.Scan(&d.Day, &d.Orders, &d.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan daily sales: %w", err)
		}

		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily sales: %w", err)
	}

	return days, nil
}

func (r *statsRepository) TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT oi.product_id, MAX(oi.product_name), SUM(oi.quantity), SUM(oi.quantity * oi.unit_price)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> $1
		GROUP BY oi.product_id
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $2`

	rows, err := r.DB.QueryContext(dbCtx, query, models.OrderStatusCancelled, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top products: %w", err)
	}
	defer rows.Close()

	products := []models.TopProduct{}

	for rows.Next() {
		var p models.TopProduct

		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.UnitsSold, &p.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top products: %w", err)
	}

	return products, nil
}
