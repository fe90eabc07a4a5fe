package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

// PaymentRepository stores one row per Stripe PaymentIntent; the intent id is
// the primary key.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentRecordStatus) error
	ListPaymentsOfCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Payment, int, error)
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

const paymentColumns = `id, order_id, customer_id, amount, currency, description, status, created_at, updated_at`

func scanPayment(row rowScanner) (*models.Payment, error) {
	payment := &models.Payment{}

	err := row.Scan(&payment.ID, &payment.OrderID, &payment.CustomerID, &payment.Amount, &payment.Currency,
		&payment.Description, &payment.Status, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO payments (id, order_id, customer_id, amount, currency, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, payment.ID, payment.OrderID, payment.CustomerID, payment.Amount,
		payment.Currency, payment.Description, payment.Status).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", mapError(err))
	}

	return nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment, err := scanPayment(r.DB.QueryRowContext(dbCtx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", mapError(err))
	}

	return payment, nil
}

func (r *paymentRepository) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentRecordStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE payments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return checkAffected(result)
}

func (r *paymentRepository) ListPaymentsOfCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Payment, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM payments WHERE customer_id = $1`, customerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID, size, offset(page, size))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, total, nil
}
