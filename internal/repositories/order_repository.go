package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderRepository interface {
	// CreateOrder inserts the order and its items and decrements stock in one
	// transaction. A short stock rolls everything back with an
	// *InsufficientStockError.
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error)
	ListOrders(ctx context.Context, filter models.OrderFilter, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, deliveredAt *time.Time) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, order_number, customer_id, status, total_amount, payment_status, payment_method,
		payment_intent_id, shipping_address, contact_email, contact_phone, notes, delivered_at, created_at, updated_at`

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) (err error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	shippingAddress, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO orders (id, order_number, customer_id, status, total_amount, payment_status, payment_method,
			payment_intent_id, shipping_address, contact_email, contact_phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, query,
		order.ID, order.OrderNumber, order.CustomerID, order.Status, order.TotalAmount, order.PaymentStatus,
		order.PaymentMethod, order.PaymentIntentID, shippingAddress, order.ContactEmail, order.ContactPhone, order.Notes,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", mapError(err))
	}

	for i := range order.Items {
		item := &order.Items[i]

		result, execErr := tx.ExecContext(dbCtx,
			`UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW() WHERE id = $2 AND stock_quantity >= $1`,
			item.Quantity, item.ProductID)
		if execErr != nil {
			return fmt.Errorf("failed to reserve stock: %w", execErr)
		}

		if affected := checkAffected(result); affected != nil {
			if errors.Is(affected, ErrNotFound) {
				return &InsufficientStockError{ProductName: item.ProductName}
			}

			return affected
		}

		_, err = tx.ExecContext(dbCtx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			item.ID, order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}

		item.OrderID = order.ID
		item.CreatedAt = order.CreatedAt
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var (
		address     []byte
		deliveredAt sql.NullTime
	)

	err := row.Scan(&order.ID, &order.OrderNumber, &order.CustomerID, &order.Status, &order.TotalAmount,
		&order.PaymentStatus, &order.PaymentMethod, &order.PaymentIntentID, &address, &order.ContactEmail,
		&order.ContactPhone, &order.Notes, &deliveredAt, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get the order: %w", mapError(err))
	}

	items, err := r.itemsFor(dbCtx, []uuid.UUID{order.ID})
	if err != nil {
		return nil, err
	}

	order.Items = items[order.ID]

	return order, nil
}

func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error) {
	return r.list(ctx, `WHERE customer_id = $1`, []any{customerID}, page, size)
}

func (r *orderRepository) ListOrders(ctx context.Context, filter models.OrderFilter, page, size int) ([]*models.Order, int, error) {
	if filter.Status != "" {
		return r.list(ctx, `WHERE status = $1`, []any{filter.Status}, page, size)
	}

	return r.list(ctx, "", nil, page, size)
}

func (r *orderRepository) list(ctx context.Context, where string, args []any, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, size, offset(page, size))...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []*models.Order
		ids    []uuid.UUID
	)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}

		orders = append(orders, order)
		ids = append(ids, order.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate orders: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Order{}, total, nil
	}

	items, err := r.itemsFor(dbCtx, ids)
	if err != nil {
		return nil, 0, err
	}

	for _, order := range orders {
		order.Items = items[order.ID]
	}

	return orders, total, nil
}

// itemsFor loads the items of several orders in one query.
func (r *orderRepository) itemsFor(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]models.OrderItem, error) {
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]models.OrderItem, len(orderIDs))

	for rows.Next() {
		var item models.OrderItem

		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items[item.OrderID] = append(items[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return items, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus, deliveredAt *time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET status = $1, delivered_at = COALESCE($2, delivered_at), updated_at = NOW()
		WHERE id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, status, deliveredAt, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return checkAffected(result)
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET payment_status = $1, payment_intent_id = COALESCE(NULLIF($2, ''), payment_intent_id), updated_at = NOW()
		WHERE id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, status, paymentIntentID, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return checkAffected(result)
}
