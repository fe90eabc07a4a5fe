package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

type WarrantyRepository interface {
	CreateWarranty(ctx context.Context, warranty *models.Warranty) error
	GetWarrantyByID(ctx context.Context, id uuid.UUID) (*models.Warranty, error)
	GetWarrantyByNumber(ctx context.Context, number string) (*models.Warranty, error)
	ListWarrantiesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Warranty, error)
	ListWarranties(ctx context.Context, status models.WarrantyStatus, page, size int) ([]*models.Warranty, int, error)
	UpdateWarrantyStatus(ctx context.Context, id uuid.UUID, status models.WarrantyStatus) error
	// CountForOrderItem counts non-void warranties registered against one
	// product line of an order.
	CountForOrderItem(ctx context.Context, orderID, productID uuid.UUID) (int, error)
	// ListDueForReminder returns active warranties expiring in [now, until]
	// with no reminder sent, joined with the customer's name and email.
	ListDueForReminder(ctx context.Context, now, until time.Time) ([]*models.Warranty, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error
	// ExpireDue flips active warranties past their expiry to expired and
	// returns their warranty numbers.
	ExpireDue(ctx context.Context, now time.Time) ([]string, error)
}

type warrantyRepository struct {
	DB *sql.DB
}

func NewWarrantyRepo(db *sql.DB) WarrantyRepository {
	return &warrantyRepository{DB: db}
}

const warrantyColumns = `w.id, w.warranty_number, w.customer_id, w.order_id, w.product_id, w.product_name, w.serial_number,
		w.purchase_date, w.expires_at, w.status, w.reminder_sent_at, w.created_at, w.updated_at`

func scanWarranty(row rowScanner, extra ...any) (*models.Warranty, error) {
	w := &models.Warranty{}

	var reminderSentAt sql.NullTime

	dest := []any{
		&w.ID, &w.WarrantyNumber, &w.CustomerID, &w.OrderID, &w.ProductID, &w.ProductName, &w.SerialNumber,
		&w.PurchaseDate, &w.ExpiresAt, &w.Status, &reminderSentAt, &w.CreatedAt, &w.UpdatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if reminderSentAt.Valid {
		w.ReminderSentAt = &reminderSentAt.Time
	}

	return w, nil
}

func (r *warrantyRepository) CreateWarranty(ctx context.Context, w *models.Warranty) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO warranties (warranty_number, customer_id, order_id, product_id, product_name, serial_number,
			purchase_date, expires_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, w.WarrantyNumber, w.CustomerID, w.OrderID, w.ProductID, w.ProductName,
		w.SerialNumber, w.PurchaseDate, w.ExpiresAt, w.Status).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert warranty: %w", mapError(err))
	}

	return nil
}

func (r *warrantyRepository) GetWarrantyByID(ctx context.Context, id uuid.UUID) (*models.Warranty, error) {
	return r.getOne(ctx, `w.id = $1`, id)
}

func (r *warrantyRepository) GetWarrantyByNumber(ctx context.Context, number string) (*models.Warranty, error) {
	return r.getOne(ctx, `w.warranty_number = $1`, number)
}

func (r *warrantyRepository) getOne(ctx context.Context, cond string, arg any) (*models.Warranty, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	w, err := scanWarranty(r.DB.QueryRowContext(dbCtx, `SELECT `+warrantyColumns+` FROM warranties w WHERE `+cond, arg))
	if err != nil {
		return nil, fmt.Errorf("failed to get warranty: %w", mapError(err))
	}

	return w, nil
}

func (r *warrantyRepository) ListWarrantiesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Warranty, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + warrantyColumns + ` FROM warranties w WHERE w.customer_id = $1 ORDER BY w.created_at DESC`

	return r.query(dbCtx, query, false, customerID)
}

func (r *warrantyRepository) ListWarranties(ctx context.Context, status models.WarrantyStatus, page, size int) ([]*models.Warranty, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		where string
		args  []any
	)

	if status != "" {
		where = ` WHERE w.status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM warranties w`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count warranties: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM warranties w%s ORDER BY w.created_at DESC LIMIT $%d OFFSET $%d`,
		warrantyColumns, where, len(args)+1, len(args)+2)

	warranties, err := r.query(dbCtx, query, false, append(args, size, offset(page, size))...)
	if err != nil {
		return nil, 0, err
	}

	return warranties, total, nil
}

func (r *warrantyRepository) UpdateWarrantyStatus(ctx context.Context, id uuid.UUID, status models.WarrantyStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE warranties SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update warranty status: %w", err)
	}

	return checkAffected(result)
}

func (r *warrantyRepository) ListDueForReminder(ctx context.Context, now, until time.Time) ([]*models.Warranty, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + warrantyColumns + `, u.name, u.email
		FROM warranties w
		JOIN users u ON u.id = w.customer_id
		WHERE w.status = $1 AND w.reminder_sent_at IS NULL AND w.expires_at BETWEEN $2 AND $3
		ORDER BY w.expires_at`

	return r.query(dbCtx, query, true, models.WarrantyStatusActive, now, until)
}

func (r *warrantyRepository) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE warranties SET reminder_sent_at = $1, updated_at = NOW() WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return checkAffected(result)
}

func (r *warrantyRepository) CountForOrderItem(ctx context.Context, orderID, productID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var n int

	err := r.DB.QueryRowContext(dbCtx,
		`SELECT COUNT(*) FROM warranties WHERE order_id = $1 AND product_id = $2 AND status <> $3`,
		orderID, productID, models.WarrantyStatusVoid).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count warranties: %w", err)
	}

	return n, nil
}

func (r *warrantyRepository) ExpireDue(ctx context.Context, now time.Time) ([]string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx,
		`UPDATE warranties SET status = $1, updated_at = NOW() WHERE status = $2 AND expires_at < $3 RETURNING warranty_number`,
		models.WarrantyStatusExpired, models.WarrantyStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("failed to expire warranties: %w", err)
	}
	defer rows.Close()

	var numbers []string

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan expired warranty: %w", err)
		}

		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expired warranties: %w", err)
	}

	return numbers, nil
}

func (r *warrantyRepository) query(ctx context.Context, query string, withCustomer bool, args ...any) ([]*models.Warranty, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list warranties: %w", err)
	}
	defer rows.Close()

	warranties := []*models.Warranty{}

	for rows.Next() {
		var (
			w           *models.Warranty
			name, email string
			scanErr     error
		)

		if withCustomer {
			w, scanErr = scanWarranty(rows, &name, &email)
		} else {
			w, scanErr = scanWarranty(rows)
		}

		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan warranty: %w", scanErr)
		}

		w.CustomerName, w.CustomerEmail = name, email

		warranties = append(warranties, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate warranties: %w", err)
	}

	return warranties, nil
}
