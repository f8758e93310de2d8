package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cotización.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// Quotation representa una cotización de un producto a un cliente.
type Quotation struct {
	ID         string
	CustomerID string
	ProductID  string
	Quantity   int64
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	ValidUntil *time.Time
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsValidQuotationStatus indica si s es un estado de cotización soportado.
func IsValidQuotationStatus(s string) bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return true
	}
	return false
}
