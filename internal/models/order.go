package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

type PaymentStatus string

type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "online"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping:  {OrderStatusDelivered},
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Address struct {
	Name       string `json:"name" validate:"required,max=100"`
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=12"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
}

type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i OrderItem) Amount() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

type Order struct {
	ID              uuid.UUID     `json:"id"`
	OrderNumber     string        `json:"order_number"`
	CustomerID      uuid.UUID     `json:"customer_id"`
	Status          OrderStatus   `json:"status"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	ShippingAddress *Address      `json:"shipping_address"`
	ContactEmail    string        `json:"contact_email"`
	ContactPhone    string        `json:"contact_phone,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Items           []OrderItem   `json:"items"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// HasProduct returns the order line for productID, if any.
func (o *Order) HasProduct(productID uuid.UUID) (OrderItem, bool) {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return OrderItem{}, false
}

type CreateOrderRequest struct {
	ShippingAddress Address       `json:"shipping_address" validate:"required"`
	PaymentMethod   PaymentMethod `json:"payment_method" validate:"required,oneof=cod online"`
	ContactEmail    string        `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string        `json:"contact_phone" validate:"omitempty,max=20"`
	Notes           string        `json:"notes" validate:"max=500"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed shipping delivered cancelled"`
}

// OrderFilter narrows the admin order list.
type OrderFilter struct {
	Status OrderStatus
}
