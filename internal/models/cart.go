package models

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// CartItem is one product line. Items are keyed by product id in Cart.Items,
// so a product appears at most once per cart.
type CartItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
}

// Cart is a customer's single persistent basket. It is emptied, not
// deleted, after checkout.
type Cart struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Items     map[string]CartItem `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Units counts every unit across lines, e.g. two coolers and a pad is 3.
func (c *Cart) Units() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}

	return n
}

// Lines returns the items ordered by product name so invoices and order
// lines come out the same way every time.
func (c *Cart) Lines() []CartItem {
	lines := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, item)
	}

	slices.SortFunc(lines, func(a, b CartItem) int {
		return cmp.Or(cmp.Compare(a.ProductName, b.ProductName), cmp.Compare(a.ProductID.String(), b.ProductID.String()))
	})

	return lines
}

// Empty drops every line and zeroes the total.
func (c *Cart) Empty(now time.Time) {
	c.Items = make(map[string]CartItem)
	c.Total = 0
	c.UpdatedAt = now
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=100"`
}

// UpdateQuantityRequest sets a line's quantity; zero removes the line.
type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0,max=100"`
}
