package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotificationByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	// UpdateNotification persists the delivery outcome: status, attempts, error and sent_at.
	UpdateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, status models.NotificationStatus, page, size int) ([]*models.Notification, int, error)
	// ListRetryable returns failed notifications with fewer than maxAttempts attempts, oldest first.
	ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*models.Notification, error)
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepo(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

const notificationColumns = `id, type, template, recipient, bcc, subject, content, html_content, status, attempts, error,
		sent_at, created_at, updated_at`

func scanNotification(row rowScanner) (*models.Notification, error) {
	n := &models.Notification{}

	var sentAt sql.NullTime

	err := row.Scan(&n.ID, &n.Type, &n.Template, &n.Recipient, pq.Array(&n.BCC), &n.Subject, &n.Content, &n.HTMLContent,
		&n.Status, &n.Attempts, &n.Error, &sentAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if sentAt.Valid {
		n.SentAt = &sentAt.Time
	}

	return n, nil
}

func bccOrEmpty(bcc []string) []string {
	if bcc == nil {
		return []string{}
	}

	return bcc
}

func (r *notificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO notifications (type, template, recipient, bcc, subject, content, html_content, status, attempts, error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, n.Type, n.Template, n.Recipient, pq.Array(bccOrEmpty(n.BCC)), n.Subject, n.Content, n.HTMLContent,
		n.Status, n.Attempts, n.Error).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	n, err := scanNotification(r.DB.QueryRowContext(dbCtx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", mapError(err))
	}

	return n, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, n *models.Notification) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE notifications
		SET status = $1, attempts = $2, error = $3, sent_at = $4, updated_at = NOW()
		WHERE id = $5`

	result, err := r.DB.ExecContext(dbCtx, query, n.Status, n.Attempts, n.Error, n.SentAt, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	return checkAffected(result)
}

func (r *notificationRepository) ListNotifications(ctx context.Context, status models.NotificationStatus, page, size int) ([]*models.Notification, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		where string
		args  []any
	)

	if status != "" {
		where = ` WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM notifications`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM notifications%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		notificationColumns, where, len(args)+1, len(args)+2)

	notifications, err := r.query(dbCtx, query, append(args, size, offset(page, size))...)
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *notificationRepository) ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*models.Notification, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE status = $1 AND attempts < $2
		ORDER BY created_at
		LIMIT $3`

	return r.query(dbCtx, query, models.StatusFailed, maxAttempts, limit)
}

func (r *notificationRepository) query(ctx context.Context, query string, args ...any) ([]*models.Notification, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
