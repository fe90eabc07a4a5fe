package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeEmail NotificationType = "email"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

// Template names of the transactional emails.
const (
	TemplateOrderConfirmation        = "order_confirmation"
	TemplateWarrantyRegistered       = "warranty_registered"
	TemplateWarrantyReminder         = "warranty_reminder"
	TemplateComplaintAcknowledgement = "complaint_acknowledgement"
	TemplateComplaintResolved        = "complaint_resolved"
	TemplateInvoice                  = "invoice"
	TemplateCustom                   = "custom"
)

type Notification struct {
	ID          uuid.UUID          `json:"id"`
	Type        NotificationType   `json:"type"`
	Template    string             `json:"template"`
	Recipient   string             `json:"recipient"`
	BCC         []string           `json:"bcc,omitempty"`
	Subject     string             `json:"subject,omitempty"`
	Content     string             `json:"content"`
	HTMLContent string             `json:"html_content,omitempty"`
	Status      NotificationStatus `json:"status"`
	Attempts    int                `json:"attempts"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	SentAt      *time.Time         `json:"sent_at,omitempty"`
}

// Attachment is an inline or downloadable file carried by an email.
type Attachment struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Content     []byte `json:"content" validate:"required"`
	ContentID   string `json:"content_id,omitempty"`
}

type EmailNotificationRequest struct {
	Subject     string            `json:"subject" validate:"required,max=250"`
	Content     string            `json:"content" validate:"required"`
	HTMLContent string            `json:"html_content,omitempty"`
	To          string            `json:"to" validate:"required,email"`
	CC          []string          `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string          `json:"bcc,omitempty" validate:"omitempty,dive,email"`
	Attachments []Attachment      `json:"attachments,omitempty" validate:"omitempty,dive"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type NotificationResponse struct {
	ID        uuid.UUID          `json:"id"`
	Type      NotificationType   `json:"type"`
	Template  string             `json:"template"`
	Status    NotificationStatus `json:"status"`
	Attempts  int                `json:"attempts"`
	Error     string             `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}

func (n *Notification) Response() *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Template:  n.Template,
		Status:    n.Status,
		Attempts:  n.Attempts,
		Error:     n.Error,
		CreatedAt: n.CreatedAt,
		SentAt:    n.SentAt,
	}
}
