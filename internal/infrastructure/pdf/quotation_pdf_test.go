package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/usecase"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,00", formatMoney(decimal.Zero))
	assert.Equal(t, "999,90", formatMoney(decimal.RequireFromString("999.9")))
	assert.Equal(t, "1.234.567,50", formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-25.000,00", formatMoney(decimal.NewFromInt(-25000)))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3F2A9C10", shortID("3f2a9c10-0000-4000-8000-000000000000"))
	assert.Equal(t, "AB", shortID("ab"))
}

func TestGenerateQuotationPDF(t *testing.T) {
	until := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	doc := usecase.QuotationDocument{
		Quotation: &entity.Quotation{
			ID: "3f2a9c10-0000-4000-8000-000000000000", Quantity: 4,
			UnitPrice: decimal.NewFromInt(2500), Total: decimal.NewFromInt(10000),
			ValidUntil: &until, Status: entity.QuotationStatusSent, Notes: "Entrega en 5 días", CreatedAt: time.Now(),
		},
		Customer: &entity.Customer{Name: "Ferretería El Tornillo", Email: "compras@tornillo.co"},
		Product:  &entity.Product{Name: "Tornillo 3/8", Code: "T-38"},
	}

	out, err := NewMarotoPDFGenerator("miinventory").GenerateQuotationPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")

	_, err = NewMarotoPDFGenerator("miinventory").GenerateQuotationPDF(context.Background(), usecase.QuotationDocument{})
	assert.Error(t, err)
}
