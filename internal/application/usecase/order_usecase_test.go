package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/application/usecase"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

func newOrderUC(s *store) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(s.orders, s.products, s.warehouses, s.suppliers, s.customers)
}

func purchase() dto.OrderRequest {
	return dto.OrderRequest{
		ProductID:   "P",
		Quantity:    3,
		UnitPrice:   decimal.RequireFromString("12.50"),
		SupplierID:  ptr("S"),
		WarehouseID: "W1",
	}
}

func TestOrderUseCase_CreateTypedCalculaTotal(t *testing.T) {
	s := newStore()
	s.seed()
	uc := newOrderUC(s)

	out, err := uc.CreateTyped(context.Background(), entity.OrderTypePurchase, purchase())
	require.NoError(t, err)
	assert.Equal(t, entity.OrderTypePurchase, out.OrderType)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("37.5")), "total: %s", out.Total)
	assert.False(t, out.OrderDate.IsZero())
}

func TestOrderUseCase_ReglasPorTipo(t *testing.T) {
	s := newStore()
	s.seed()
	uc := newOrderUC(s)
	ctx := context.Background()

	noSupplier := purchase()
	noSupplier.SupplierID = nil
	_, err := uc.CreateTyped(ctx, entity.OrderTypePurchase, noSupplier)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sale := purchase()
	sale.SupplierID = nil
	_, err = uc.CreateTyped(ctx, entity.OrderTypeSale, sale)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin cliente")

	sale.CustomerID = ptr("C-404")
	_, err = uc.CreateTyped(ctx, entity.OrderTypeSale, sale)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sale.CustomerID = ptr("C")
	_, err = uc.CreateTyped(ctx, entity.OrderTypeSale, sale)
	assert.NoError(t, err)

	transfer := purchase()
	transfer.DestinationWarehouseID = ptr("W1")
	_, err = uc.CreateTyped(ctx, entity.OrderTypeTransfer, transfer)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "traslado a la misma bodega")

	transfer.DestinationWarehouseID = ptr("W2")
	_, err = uc.CreateTyped(ctx, entity.OrderTypeTransfer, transfer)
	assert.NoError(t, err)

	mismatch := purchase()
	mismatch.OrderType = entity.OrderTypeSale
	_, err = uc.CreateTyped(ctx, entity.OrderTypePurchase, mismatch)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_ValidacionesGenerales(t *testing.T) {
	s := newStore()
	s.seed()
	uc := newOrderUC(s)
	ctx := context.Background()

	mutate := map[string]func(*dto.OrderRequest){
		"cantidad cero":   func(o *dto.OrderRequest) { o.Quantity = 0 },
		"precio negativo": func(o *dto.OrderRequest) { o.UnitPrice = decimal.NewFromInt(-1) },
		"estado inválido": func(o *dto.OrderRequest) { o.Status = "shipped" },
		"fecha inválida":  func(o *dto.OrderRequest) { o.OrderDate = "15/03/2024" },
		"sin bodega":      func(o *dto.OrderRequest) { o.WarehouseID = "" },
	}
	for name, m := range mutate {
		t.Run(name, func(t *testing.T) {
			in := purchase()
			m(&in)
			_, err := uc.CreateTyped(ctx, entity.OrderTypePurchase, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	in := purchase()
	in.ProductID = "P-404"
	_, err := uc.CreateTyped(ctx, entity.OrderTypePurchase, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUseCase_ListPorTipoYUpdate(t *testing.T) {
	s := newStore()
	s.seed()
	uc := newOrderUC(s)
	ctx := context.Background()

	created, err := uc.CreateTyped(ctx, entity.OrderTypePurchase, purchase())
	require.NoError(t, err)

	list, err := uc.List(ctx, entity.OrderTypePurchase, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	list, err = uc.List(ctx, entity.OrderTypeSale, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = uc.List(ctx, "gift_order", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	upd := purchase()
	upd.OrderType = entity.OrderTypePurchase
	upd.Quantity = 10
	upd.Status = entity.OrderStatusConfirmed
	out, err := uc.Update(ctx, created.ID, upd)
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, entity.OrderStatusConfirmed, out.Status)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
}
