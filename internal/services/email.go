package service

import (
	"context"
	"log/slog"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/templates"
	"github.com/google/uuid"
)

// EmailSettings carries the links and addresses the transactional emails need.
type EmailSettings struct {
	SiteURL      string
	SupportEmail string
	// AdminCopy is blind-copied on order confirmations and new complaints.
	AdminCopy []string
}

// notify renders template and hands it to the notification pipeline.
// Failures are logged and swallowed: a lost email never undoes the business
// operation, and RetryFailed picks up what was recorded. The notification is
// nil when nothing was recorded.
func notify(ctx context.Context, n NotificationService, template, to string, data any, bcc []string) *models.Notification {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("template", template))

	rendered, err := templates.Render(template, data)
	if err != nil {
		logger.Error("Failed to render email", slog.String("error", err.Error()))

		return nil
	}

	notification, err := n.Deliver(ctx, template, &models.EmailNotificationRequest{
		To:          to,
		Subject:     rendered.Subject,
		Content:     rendered.Text,
		HTMLContent: rendered.HTML,
		BCC:         bcc,
	})
	if err != nil {
		logger.Warn("Transactional email not delivered", slog.String("error", err.Error()))
	}

	return notification
}

// canAccess reports whether claims may read a resource owned by ownerID.
func canAccess(claims *models.Claims, ownerID uuid.UUID) bool {
	return claims != nil && (claims.IsAdmin() || claims.UserID == ownerID)
}
