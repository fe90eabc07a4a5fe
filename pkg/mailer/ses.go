package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sesv2"
	"github.com/aws/aws-sdk-go/service/sesv2/sesv2iface"
	"github.com/coolbreeze/storefront/internal/models"
)

// SESSender sends raw MIME through the SES v2 API so attachments and inline
// images survive.
type SESSender struct {
	client    sesv2iface.SESV2API
	fromEmail string
	fromName  string
}

func NewSESSender(client sesv2iface.SESV2API, fromEmail, fromName string) *SESSender {
	return &SESSender{client: client, fromEmail: fromEmail, fromName: fromName}
}

func (s *SESSender) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	raw, err := Raw(BuildMessage(s.fromEmail, s.fromName, req))
	if err != nil {
		return err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &sesv2.Destination{
			ToAddresses: aws.StringSlice([]string{req.To}),
		},
		Content: &sesv2.EmailContent{
			Raw: &sesv2.RawMessage{Data: raw},
		},
	}

	if len(req.CC) > 0 {
		input.Destination.CcAddresses = aws.StringSlice(req.CC)
	}

	if len(req.BCC) > 0 {
		input.Destination.BccAddresses = aws.StringSlice(req.BCC)
	}

	if _, err := s.client.SendEmailWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	return nil
}
