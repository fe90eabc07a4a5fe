package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductKind string

const (
	ProductKindCooler    ProductKind = "cooler"
	ProductKindSparePart ProductKind = "spare_part"
)

const (
	ProductStatusActive       = "active"
	ProductStatusInactive     = "inactive"
	ProductStatusDiscontinued = "discontinued"
)

// Default warranty periods applied when a product is created without one.
const (
	DefaultCoolerWarrantyMonths    = 12
	DefaultSparePartWarrantyMonths = 6
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type Product struct {
	ID             uuid.UUID   `json:"id"`
	CategoryID     int64       `json:"category_id"`
	Kind           ProductKind `json:"kind"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Price          float64     `json:"price"`
	StockQuantity  int         `json:"stock_quantity"`
	SKU            string      `json:"sku"`
	Status         string      `json:"status"`
	ImageURL       string      `json:"image_url,omitempty"`
	WarrantyMonths int         `json:"warranty_months"`
	CompatibleWith []string    `json:"compatible_with,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Category       *Category   `json:"category,omitempty"`
}

func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

type CreateProductRequest struct {
	CategoryID     int64       `json:"category_id" validate:"required"`
	Kind           ProductKind `json:"kind" validate:"required,oneof=cooler spare_part"`
	Name           string      `json:"name" validate:"required,min=3,max=200"`
	Description    string      `json:"description,omitempty" validate:"max=5000"`
	Price          float64     `json:"price" validate:"required,gt=0"`
	StockQuantity  int         `json:"stock_quantity" validate:"gte=0"`
	SKU            string      `json:"sku" validate:"required,min=3,max=50"`
	WarrantyMonths *int        `json:"warranty_months,omitempty" validate:"omitempty,gte=0,lte=120"`
	CompatibleWith []string    `json:"compatible_with,omitempty" validate:"omitempty,dive,min=1,max=100"`
}

type UpdateProductRequest struct {
	CategoryID     *int64   `json:"category_id,omitempty"`
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity  *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
	WarrantyMonths *int     `json:"warranty_months,omitempty" validate:"omitempty,gte=0,lte=120"`
	CompatibleWith []string `json:"compatible_with,omitempty" validate:"omitempty,dive,min=1,max=100"`
}

// ProductFilter narrows a catalogue listing. Zero values mean "any".
type ProductFilter struct {
	Kind       ProductKind
	CategoryID int64
	ActiveOnly bool
}
