package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest entrada para crear o reemplazar una orden. Total se calcula.
type OrderRequest struct {
	OrderType              string          `json:"order_type"`
	Status                 string          `json:"status"`
	ProductID              string          `json:"product"`
	Quantity               int64           `json:"quantity"`
	UnitPrice              decimal.Decimal `json:"unit_price"`
	SupplierID             *string         `json:"supplier"`
	CustomerID             *string         `json:"customer"`
	WarehouseID            string          `json:"warehouse"`
	DestinationWarehouseID *string         `json:"destination_warehouse"`
	OrderDate              string          `json:"order_date"`
	Notes                  string          `json:"notes"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID                     string          `json:"id"`
	OrderType              string          `json:"order_type"`
	Status                 string          `json:"status"`
	ProductID              string          `json:"product"`
	Quantity               int64           `json:"quantity"`
	UnitPrice              decimal.Decimal `json:"unit_price"`
	Total                  decimal.Decimal `json:"total"`
	SupplierID             *string         `json:"supplier"`
	CustomerID             *string         `json:"customer"`
	WarehouseID            string          `json:"warehouse"`
	DestinationWarehouseID *string         `json:"destination_warehouse"`
	OrderDate              time.Time       `json:"order_date"`
	Notes                  string          `json:"notes"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// QuotationRequest entrada para crear o reemplazar una cotización. Total se calcula.
type QuotationRequest struct {
	CustomerID string          `json:"customer"`
	ProductID  string          `json:"product"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ValidUntil string          `json:"valid_until"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
}

// QuotationResponse salida de una cotización.
type QuotationResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer"`
	ProductID  string          `json:"product"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Total      decimal.Decimal `json:"total"`
	ValidUntil *time.Time      `json:"valid_until"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
