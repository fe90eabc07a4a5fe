package models

import (
	"time"

	"github.com/google/uuid"
)

type WarrantyStatus string

const (
	WarrantyStatusActive  WarrantyStatus = "active"
	WarrantyStatusExpired WarrantyStatus = "expired"
	WarrantyStatusVoid    WarrantyStatus = "void"
)

type Warranty struct {
	ID             uuid.UUID      `json:"id"`
	WarrantyNumber string         `json:"warranty_number"`
	CustomerID     uuid.UUID      `json:"customer_id"`
	OrderID        uuid.UUID      `json:"order_id"`
	ProductID      uuid.UUID      `json:"product_id"`
	ProductName    string         `json:"product_name"`
	SerialNumber   string         `json:"serial_number"`
	PurchaseDate   time.Time      `json:"purchase_date"`
	ExpiresAt      time.Time      `json:"expires_at"`
	Status         WarrantyStatus `json:"status"`
	ReminderSentAt *time.Time     `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Filled by joins for emails, never stored.
	CustomerName  string `json:"-"`
	CustomerEmail string `json:"-"`
}

// DaysLeft returns whole days remaining until expiry, never negative.
func (w *Warranty) DaysLeft(now time.Time) int {
	d := int(w.ExpiresAt.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}

	return d
}

type RegisterWarrantyRequest struct {
	OrderID      uuid.UUID `json:"order_id" validate:"required"`
	ProductID    uuid.UUID `json:"product_id" validate:"required"`
	SerialNumber string    `json:"serial_number" validate:"required,min=4,max=64,alphanumunicode"`
}

// WarrantyLookup is the public view of a warranty.
type WarrantyLookup struct {
	WarrantyNumber string         `json:"warranty_number"`
	ProductName    string         `json:"product_name"`
	Status         WarrantyStatus `json:"status"`
	ExpiresAt      time.Time      `json:"expires_at"`
}
