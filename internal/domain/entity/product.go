package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive  = "active"
	ProductStatusPending = "pending"
)

// Product representa un producto del catálogo.
// La existencia por bodega vive en Stock; MinStock es el umbral para alertas de reposición.
type Product struct {
	ID           string
	Name         string
	Slug         string
	Code         string // único
	BuyingPrice  decimal.Decimal
	SellingPrice decimal.Decimal
	MinStock     int64
	Tax          *int
	TaxType      *int
	Notes        string
	ProductImage string
	Status       string // active, pending
	SupplierID   *string
	CategoryID   *string
	CreatedBy    *string // UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
