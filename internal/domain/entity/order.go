package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden.
const (
	OrderTypePurchase = "purchase_order" // compra a proveedor
	OrderTypeSale     = "sale_order"     // venta a cliente
	OrderTypeTransfer = "transfer_order" // traslado entre bodegas
)

// Estados de orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order representa una orden de compra, venta o traslado de un producto.
// Total = Quantity * UnitPrice.
type Order struct {
	ID                     string
	Type                   string
	Status                 string
	ProductID              string
	Quantity               int64
	UnitPrice              decimal.Decimal
	Total                  decimal.Decimal
	SupplierID             *string
	CustomerID             *string
	WarehouseID            string
	DestinationWarehouseID *string
	OrderDate              time.Time
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsValidOrderType indica si t es un tipo de orden soportado.
func IsValidOrderType(t string) bool {
	switch t {
	case OrderTypePurchase, OrderTypeSale, OrderTypeTransfer:
		return true
	}
	return false
}

// IsValidOrderStatus indica si s es un estado de orden soportado.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
