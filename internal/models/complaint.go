package models

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "open"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusClosed     ComplaintStatus = "closed"
)

var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintStatusOpen:       {ComplaintStatusInProgress, ComplaintStatusClosed},
	ComplaintStatusInProgress: {ComplaintStatusResolved, ComplaintStatusClosed},
	ComplaintStatusResolved:   {ComplaintStatusClosed},
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type ComplaintCategory string

const (
	ComplaintProductDefect ComplaintCategory = "product_defect"
	ComplaintDelivery      ComplaintCategory = "delivery"
	ComplaintInstallation  ComplaintCategory = "installation"
	ComplaintBilling       ComplaintCategory = "billing"
	ComplaintOther         ComplaintCategory = "other"
)

type Complaint struct {
	ID           uuid.UUID         `json:"id"`
	TicketNumber string            `json:"ticket_number"`
	CustomerID   uuid.UUID         `json:"customer_id"`
	OrderID      *uuid.UUID        `json:"order_id,omitempty"`
	WarrantyID   *uuid.UUID        `json:"warranty_id,omitempty"`
	Category     ComplaintCategory `json:"category"`
	Subject      string            `json:"subject"`
	Description  string            `json:"description"`
	Status       ComplaintStatus   `json:"status"`
	AdminNotes   string            `json:"admin_notes,omitempty"`
	ResolvedAt   *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type FileComplaintRequest struct {
	OrderID     *uuid.UUID        `json:"order_id,omitempty"`
	WarrantyID  *uuid.UUID        `json:"warranty_id,omitempty"`
	Category    ComplaintCategory `json:"category" validate:"required,oneof=product_defect delivery installation billing other"`
	Subject     string            `json:"subject" validate:"required,min=5,max=150"`
	Description string            `json:"description" validate:"required,min=10,max=5000"`
}

type UpdateComplaintStatusRequest struct {
	Status ComplaintStatus `json:"status" validate:"required,oneof=open in_progress resolved closed"`
	Notes  string          `json:"notes" validate:"max=2000"`
}
