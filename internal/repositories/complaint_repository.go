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

type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListComplaintsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Complaint, int, error)
	ListComplaints(ctx context.Context, status models.ComplaintStatus, page, size int) ([]*models.Complaint, int, error)
	UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, notes string, resolvedAt *time.Time) error
}

type complaintRepository struct {
	DB *sql.DB
}

func NewComplaintRepo(db *sql.DB) ComplaintRepository {
	return &complaintRepository{DB: db}
}

const complaintColumns = `id, ticket_number, customer_id, order_id, warranty_id, category, subject, description, status,
		admin_notes, resolved_at, created_at, updated_at`

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	c := &models.Complaint{}

	var (
		orderID, warrantyID uuid.NullUUID
		resolvedAt          sql.NullTime
	)

	err := row.Scan(&c.ID, &c.TicketNumber, &c.CustomerID, &orderID, &warrantyID, &c.Category, &c.Subject,
		&c.Description, &c.Status, &c.AdminNotes, &resolvedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if orderID.Valid {
		c.OrderID = &orderID.UUID
	}

	if warrantyID.Valid {
		c.WarrantyID = &warrantyID.UUID
	}

	if resolvedAt.Valid {
		c.ResolvedAt = &resolvedAt.Time
	}

	return c, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func (r *complaintRepository) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO complaints (ticket_number, customer_id, order_id, warranty_id, category, subject, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, c.TicketNumber, c.CustomerID, nullUUID(c.OrderID), nullUUID(c.WarrantyID),
		c.Category, c.Subject, c.Description, c.Status).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert complaint: %w", mapError(err))
	}

	return nil
}

func (r *complaintRepository) GetComplaintByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	c, err := scanComplaint(r.DB.QueryRowContext(dbCtx, `SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", mapError(err))
	}

	return c, nil
}

func (r *complaintRepository) ListComplaintsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Complaint, int, error) {
	return r.list(ctx, ` WHERE customer_id = $1`, []any{customerID}, page, size)
}

func (r *complaintRepository) ListComplaints(ctx context.Context, status models.ComplaintStatus, page, size int) ([]*models.Complaint, int, error) {
	if status != "" {
		return r.list(ctx, ` WHERE status = $1`, []any{status}, page, size)
	}

	return r.list(ctx, "", nil, page, size)
}

func (r *complaintRepository) list(ctx context.Context, where string, args []any, page, size int) ([]*models.Complaint, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM complaints`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM complaints%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		complaintColumns, where, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, size, offset(page, size))...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}

	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan complaint: %w", err)
		}

		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate complaints: %w", err)
	}

	return complaints, total, nil
}

func (r *complaintRepository) UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, notes string, resolvedAt *time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE complaints
		SET status = $1, admin_notes = COALESCE(NULLIF($2, ''), admin_notes), resolved_at = COALESCE($3, resolved_at), updated_at = NOW()
		WHERE id = $4`

	result, err := r.DB.ExecContext(dbCtx, query, status, notes, resolvedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}

	return checkAffected(result)
}
