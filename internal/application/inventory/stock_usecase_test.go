package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/inventory"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

type listStock struct {
	repository.StockRepository
	rows     []*entity.Stock
	low      []entity.LowStockItem
	gotFiltr entity.StockFilter
}

func (l *listStock) List(_ context.Context, f entity.StockFilter, _, _ int) ([]*entity.Stock, error) {
	l.gotFiltr = f
	return l.rows, nil
}

func (l *listStock) ListBelowMinimum(context.Context) ([]entity.LowStockItem, error) {
	return l.low, nil
}

type listShipments struct {
	repository.ShipmentRepository
	byID map[string]*entity.Shipment
}

func (l listShipments) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	return l.byID[id], nil
}

func newStockUseCase(stock *listStock) *inventory.StockUseCase {
	c := &fakeCatalog{warehouses: map[string]bool{"W": true}}
	shipments := listShipments{byID: map[string]*entity.Shipment{
		"S-1": {ID: "S-1", Type: entity.ShipmentIncoming, ProductID: "P", WarehouseID: "W", Quantity: 3},
	}}
	return inventory.NewStockUseCase(stock, shipments, fakeWarehouses{c: c})
}

func TestStockUseCase_ListByWarehouse(t *testing.T) {
	stock := &listStock{rows: []*entity.Stock{{WarehouseID: "W", ProductID: "P", Quantity: 4}}}
	uc := newStockUseCase(stock)

	out, err := uc.ListByWarehouse(context.Background(), "W", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(4), out.Items[0].Quantity)
	assert.Equal(t, "W", stock.gotFiltr.WarehouseID)

	_, err = uc.ListByWarehouse(context.Background(), "NO", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockUseCase_LowStockCalculaFaltante(t *testing.T) {
	stock := &listStock{low: []entity.LowStockItem{{ProductID: "P", ProductCode: "PC01", ProductName: "Tornillo", MinStock: 10, OnHand: 3}}}
	uc := newStockUseCase(stock)

	out, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].Shortage)
	assert.Equal(t, "PC01", out[0].Code)
}

func TestStockUseCase_GetShipment(t *testing.T) {
	uc := newStockUseCase(&listStock{})

	got, err := uc.GetShipment(context.Background(), "S-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.Quantity)

	got, err = uc.GetShipment(context.Background(), "S-404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStockUseCase_ListShipmentsRechazaTipoDesconocido(t *testing.T) {
	uc := newStockUseCase(&listStock{})
	_, err := uc.ListShipments(context.Background(), entity.ShipmentFilter{Type: "return"}, 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
