package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/metrics"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/pkg/mailer"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const retryBatchSize = 100

type NotificationService interface {
	// Deliver records the email, sends it through the rate limiter and
	// stores the outcome. The notification is returned even when sending
	// fails.
	Deliver(ctx context.Context, template string, req *models.EmailNotificationRequest) (*models.Notification, error)
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error)
	GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListNotifications(ctx context.Context, status models.NotificationStatus, page, size int) ([]*models.Notification, int, error)
	// RetryFailed resends failed emails below maxAttempts and returns how
	// many went out.
	RetryFailed(ctx context.Context, maxAttempts int) (int, error)
}

type notificationService struct {
	repo    repository.NotificationRepository
	sender  mailer.Sender
	limiter *rate.Limiter
}

func NewNotificationService(repo repository.NotificationRepository, sender mailer.Sender, ratePerSecond float64) NotificationService {
	limit, burst := rate.Inf, 1
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
		burst = max(1, int(ratePerSecond))
	}

	return &notificationService{repo: repo, sender: sender, limiter: rate.NewLimiter(limit, burst)}
}

func (s *notificationService) Deliver(ctx context.Context, template string, req *models.EmailNotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{
		ID:          uuid.New(),
		Type:        models.NotificationTypeEmail,
		Template:    template,
		Recipient:   req.To,
		BCC:         req.BCC,
		Subject:     req.Subject,
		Content:     req.Content,
		HTMLContent: req.HTMLContent,
		Status:      models.StatusPending,
	}

	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		return nil, appErrors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := s.send(ctx, notification, req); err != nil {
		return notification, appErrors.ThirdPartyError("Failed to send email").WithError(err)
	}

	return notification, nil
}

func (s *notificationService) send(ctx context.Context, n *models.Notification, req *models.EmailNotificationRequest) error {
	logger := middleware.LoggerFromContext(ctx)

	err := s.limiter.Wait(ctx)
	if err == nil {
		err = s.sender.Send(ctx, req)
	}

	n.Attempts++

	if err != nil {
		n.Status = models.StatusFailed
		n.Error = err.Error()
	} else {
		now := time.Now()
		n.Status = models.StatusSent
		n.Error = ""
		n.SentAt = &now
	}

	metrics.EmailDelivered(n.Template, string(n.Status))

	if updateErr := s.repo.UpdateNotification(ctx, n); updateErr != nil {
		logger.Error("Failed to record email outcome",
			slog.String("notificationId", n.ID.String()),
			slog.String("status", string(n.Status)),
			slog.String("error", updateErr.Error()))
	}

	if err != nil {
		logger.Warn("Email delivery failed",
			slog.String("notificationId", n.ID.String()),
			slog.String("template", n.Template),
			slog.Int("attempts", n.Attempts),
			slog.String("error", err.Error()))
	}

	return err
}

func (s *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error) {
	notification, err := s.Deliver(ctx, models.TemplateCustom, req)
	if err != nil {
		return nil, err
	}

	return notification.Response(), nil
}

func (s *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	notification, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Notification not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch notification").WithError(err)
	}

	return notification, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, status models.NotificationStatus, page, size int) ([]*models.Notification, int, error) {
	page, size = utils.NormalizePage(page, size)

	notifications, total, err := s.repo.ListNotifications(ctx, status, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, total, nil
}

func (s *notificationService) RetryFailed(ctx context.Context, maxAttempts int) (int, error) {
	pending, err := s.repo.ListRetryable(ctx, maxAttempts, retryBatchSize)
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to list failed notifications").WithError(err)
	}

	sent := 0

	for _, n := range pending {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		req := &models.EmailNotificationRequest{
			To:          n.Recipient,
			BCC:         n.BCC,
			Subject:     n.Subject,
			Content:     n.Content,
			HTMLContent: n.HTMLContent,
		}

		if s.send(ctx, n, req) == nil {
			sent++
		}
	}

	return sent, nil
}
