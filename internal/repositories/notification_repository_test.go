package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notificationRowColumns = []string{
	"id", "type", "template", "recipient", "bcc", "subject", "content", "html_content", "status", "attempts", "error",
	"sent_at", "created_at", "updated_at",
}

func TestNotificationRepository(t *testing.T) {
	t.Run("CreateNotification - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewNotificationRepo(db)
		n := &models.Notification{
			Type: models.NotificationTypeEmail, Template: models.TemplateOrderConfirmation, Recipient: "asha@example.com",
			Subject: "Order confirmed", Content: "text", HTMLContent: "<p>html</p>", Status: models.StatusPending,
		}
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(q("INSERT INTO notifications")).
			WithArgs(n.Type, n.Template, n.Recipient, pq.Array([]string{}), n.Subject, n.Content, n.HTMLContent, n.Status, 0, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

		require.NoError(t, repo.CreateNotification(t.Context(), n))
		assert.Equal(t, id, n.ID)
	})

	t.Run("CreateNotification - Stores BCC", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewNotificationRepo(db)
		n := &models.Notification{
			Type: models.NotificationTypeEmail, Template: models.TemplateOrderConfirmation, Recipient: "asha@example.com",
			BCC: []string{"ops@coolbreeze.in"}, Content: "text", Status: models.StatusPending,
		}
		now := time.Now()

		mock.ExpectQuery(q("INSERT INTO notifications")).
			WithArgs(n.Type, n.Template, n.Recipient, pq.Array(n.BCC), "", n.Content, "", n.Status, 0, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New(), now, now))

		require.NoError(t, repo.CreateNotification(t.Context(), n))
	})

	t.Run("UpdateNotification - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewNotificationRepo(db)
		sentAt := time.Now()
		n := &models.Notification{ID: uuid.New(), Status: models.StatusSent, Attempts: 1, SentAt: &sentAt}

		mock.ExpectExec(q("UPDATE notifications")).
			WithArgs(models.StatusSent, 1, "", &sentAt, n.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateNotification(t.Context(), n))
	})

	t.Run("GetNotificationByID - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewNotificationRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(q("FROM notifications WHERE id = $1")).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(notificationRowColumns).
				AddRow(id, "email", "invoice", "a@b.in", "{ops@coolbreeze.in}", "Invoice", "t", "<p>h</p>", "sent", 1, "", now, now, now))

		n, err := repo.GetNotificationByID(t.Context(), id)

		require.NoError(t, err)
		assert.Equal(t, models.StatusSent, n.Status)
		assert.Equal(t, []string{"ops@coolbreeze.in"}, n.BCC)
		require.NotNil(t, n.SentAt)
	})

	t.Run("ListNotifications - Filter by status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewNotificationRepo(db)
		now := time.Now()

		mock.ExpectQuery(q("SELECT COUNT(*) FROM notifications WHERE status = $1")).WithArgs(models.StatusFailed).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(q("LIMIT $2 OFFSET $3")).WithArgs(models.StatusFailed, 10, 0).
			WillReturnRows(sqlmock.NewRows(notificationRowColumns).
				AddRow(uuid.New(), "email", "custom", "a@b.in", "{}", "s", "c", "", "failed", 2, "smtp down", nil, now, now))

		list, total, err := repo.ListNotifications(t.Context(), models.StatusFailed, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "smtp down", list[0].Error)
		assert.Nil(t, list[0].SentAt)
	})

	t.Run("ListRetryable - Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewNotificationRepo(db)

		mock.ExpectQuery(q("WHERE status = $1 AND attempts < $2")).WithArgs(models.StatusFailed, 3, 50).
			WillReturnRows(sqlmock.NewRows(notificationRowColumns))

		list, err := repo.ListRetryable(t.Context(), 3, 50)

		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
