package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Slug se genera desde Name si viene vacío.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Code         string          `json:"code"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	MinStock     int64           `json:"min_stock"`
	Tax          *int            `json:"tax"`
	TaxType      *int            `json:"tax_type"`
	Notes        string          `json:"notes"`
	ProductImage string          `json:"product_image"`
	Status       string          `json:"status"`
	SupplierID   *string         `json:"supplier"`
	CategoryID   *string         `json:"category"`
	CreatedBy    *string         `json:"created_by"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock: se maneja vía envíos).
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Slug         *string          `json:"slug"`
	Code         *string          `json:"code"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	MinStock     *int64           `json:"min_stock"`
	Tax          *int             `json:"tax"`
	TaxType      *int             `json:"tax_type"`
	Notes        *string          `json:"notes"`
	ProductImage *string          `json:"product_image"`
	Status       *string          `json:"status"`
	SupplierID   *string          `json:"supplier"`
	CategoryID   *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Code         string          `json:"code"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	MinStock     int64           `json:"min_stock"`
	Tax          *int            `json:"tax"`
	TaxType      *int            `json:"tax_type"`
	Notes        string          `json:"notes"`
	ProductImage string          `json:"product_image"`
	Status       string          `json:"status"`
	SupplierID   *string         `json:"supplier"`
	CategoryID   *string         `json:"category"`
	CreatedBy    *string         `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CategoryRequest entrada para crear o reemplazar una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
