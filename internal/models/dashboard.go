package models

import "github.com/google/uuid"

// LowStockThreshold is the stock level at or below which a product is
// reported on the dashboard.
const LowStockThreshold = 5

type DashboardSummary struct {
	OrdersByStatus   map[OrderStatus]int `json:"orders_by_status"`
	Revenue          float64             `json:"revenue"`
	OrdersToday      int                 `json:"orders_today"`
	OpenComplaints   int                 `json:"open_complaints"`
	ActiveWarranties int                 `json:"active_warranties"`
	LowStock         []LowStockProduct   `json:"low_stock"`
}

type LowStockProduct struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	StockQuantity int       `json:"stock_quantity"`
}

type SalesPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type TopProduct struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitsSold   int       `json:"units_sold"`
	Revenue     float64   `json:"revenue"`
}
