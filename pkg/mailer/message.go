package mailer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/coolbreeze/storefront/internal/models"
	"gopkg.in/gomail.v2"
)

// BuildMessage lays out req as a multipart message. Attachments with a
// ContentID are embedded inline so HTML can reference them as cid:<id>.
func BuildMessage(fromEmail, fromName string, req *models.EmailNotificationRequest) *gomail.Message {
	m := gomail.NewMessage()

	m.SetAddressHeader("From", fromEmail, fromName)
	m.SetHeader("To", req.To)

	if len(req.CC) > 0 {
		m.SetHeader("Cc", req.CC...)
	}

	// gomail drops Bcc when writing the message but still delivers to it.
	if len(req.BCC) > 0 {
		m.SetHeader("Bcc", req.BCC...)
	}

	m.SetHeader("Subject", req.Subject)
	m.SetBody("text/plain", req.Content)

	if req.HTMLContent != "" {
		m.AddAlternative("text/html", req.HTMLContent)
	}

	for _, a := range req.Attachments {
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(copyBytes(a.Content)),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		}

		if a.ContentID != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-ID": {"<" + a.ContentID + ">"}}))
			m.Embed(a.Filename, settings...)

			continue
		}

		m.Attach(a.Filename, settings...)
	}

	return m
}

// Raw renders the message as RFC 5322 bytes.
func Raw(m *gomail.Message) ([]byte, error) {
	var buf bytes.Buffer

	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIME message: %w", err)
	}

	return buf.Bytes(), nil
}

func copyBytes(content []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(content)

		return err
	}
}
