package sendgrid

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	response, err := e.client.SendWithContext(ctx, e.buildMessage(req))
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message to %s: status %d: %s", req.To, response.StatusCode, response.Body)
	}

	return nil
}

func (e *emailService) buildMessage(req *models.EmailNotificationRequest) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", req.To))

	for _, cc := range req.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}

	for _, bcc := range req.BCC {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}

	personalization.Subject = req.Subject
	message.AddPersonalizations(personalization)

	// SendGrid requires text/plain before text/html and rejects empty values.
	message.AddContent(mail.NewContent("text/plain", req.Content))

	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	for _, a := range req.Attachments {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		attachment.SetType(a.ContentType)
		attachment.SetFilename(a.Filename)

		if a.ContentID != "" {
			attachment.SetDisposition("inline")
			attachment.SetContentID(a.ContentID)
		} else {
			attachment.SetDisposition("attachment")
		}

		message.AddAttachment(attachment)
	}

	for k, v := range req.Metadata {
		message.SetCustomArg(k, v)
	}

	// Categories drive the per-template stats in the SendGrid dashboard.
	if tpl := req.Metadata["template"]; tpl != "" {
		message.AddCategories(tpl)
	}

	return message
}

// GetSendGridClient exposes the underlying client so tests can point it at a stub server.
func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}
