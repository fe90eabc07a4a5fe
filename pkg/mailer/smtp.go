package mailer

import (
	"context"
	"fmt"

	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/models"
	"gopkg.in/gomail.v2"
)

// Dialer is the part of *gomail.Dialer the SMTP sender uses.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	dialer    Dialer
	fromEmail string
	fromName  string
}

func NewSMTPSender(cfg *config.Mail) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	return NewSMTPSenderWithDialer(dialer, cfg.FromEmail, cfg.FromName)
}

func NewSMTPSenderWithDialer(dialer Dialer, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{dialer: dialer, fromEmail: fromEmail, fromName: fromName}
}

func (s *SMTPSender) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	// gomail has no context support; at least honour a cancelled caller.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(BuildMessage(s.fromEmail, s.fromName, req)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	return nil
}
