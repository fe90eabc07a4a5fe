package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentRecordStatus string

const (
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordSucceeded PaymentRecordStatus = "succeeded"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
	PaymentRecordRefunded  PaymentRecordStatus = "refunded"
)

type Payment struct {
	ID          string              `json:"id"`
	OrderID     uuid.UUID           `json:"order_id"`
	CustomerID  uuid.UUID           `json:"customer_id"`
	Amount      float64             `json:"amount"`
	Currency    string              `json:"currency"`
	Description string              `json:"description"`
	Status      PaymentRecordStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type CreatePaymentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

type PaymentResponse struct {
	Payment      *Payment `json:"payment"`
	ClientSecret string   `json:"client_secret,omitempty"`
}
