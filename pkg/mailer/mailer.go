// Package mailer selects the transactional email provider and builds MIME
// messages for the providers that take raw mail.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sesv2"
	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/pkg/sendgrid"
)

const (
	ProviderSendGrid = "sendgrid"
	ProviderSMTP     = "smtp"
	ProviderSES      = "ses"
	ProviderLog      = "log"
)

type Sender interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

// New builds the Sender named by cfg.Provider.
func New(cfg *config.Mail) (Sender, error) {
	switch cfg.Provider {
	case ProviderSendGrid:
		if cfg.SendGrid.APIKey == "" {
			return nil, fmt.Errorf("mail provider %s requires an API key", cfg.Provider)
		}

		return sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.FromEmail, cfg.FromName), nil
	case ProviderSMTP:
		return NewSMTPSender(cfg), nil
	case ProviderSES:
		sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.SES.Region)})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}

		return NewSESSender(sesv2.New(sess), cfg.FromEmail, cfg.FromName), nil
	case ProviderLog:
		return LogSender{}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

// LogSender writes emails to the log instead of delivering them. Used for
// local development.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	slog.InfoContext(ctx, "Email (not delivered)",
		slog.String("to", req.To),
		slog.String("subject", req.Subject),
		slog.Int("attachments", len(req.Attachments)),
	)

	return nil
}
