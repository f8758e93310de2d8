package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/inventory"
)

type ledgerFeature struct {
	store *memStore
	err   error
}

func (f *ledgerFeature) reset() {
	f.store = newMemStore()
	f.err = nil
}

func (f *ledgerFeature) noStock() error {
	f.reset()
	return nil
}

func (f *ledgerFeature) apply(kind string, qty int, productID, warehouseID string) error {
	_, f.err = inventory.ApplyShipment(context.Background(), f.store, shipment(kind, warehouseID, productID, int64(qty)))
	return nil
}

func (f *ledgerFeature) incoming(qty int, productID, warehouseID string) error {
	return f.apply(entity.ShipmentIncoming, qty, productID, warehouseID)
}

func (f *ledgerFeature) outgoing(qty int, productID, warehouseID string) error {
	return f.apply(entity.ShipmentOutgoing, qty, productID, warehouseID)
}

func (f *ledgerFeature) stockIs(productID, warehouseID string, want int) error {
	got, ok := f.store.quantity(warehouseID, productID)
	if !ok {
		return fmt.Errorf("no existe fila de stock para (%s, %s)", warehouseID, productID)
	}
	if got != int64(want) {
		return fmt.Errorf("stock esperado %d, obtenido %d", want, got)
	}
	return nil
}

func (f *ledgerFeature) noRow(productID, warehouseID string) error {
	if _, ok := f.store.quantity(warehouseID, productID); ok {
		return fmt.Errorf("no se esperaba fila de stock para (%s, %s)", warehouseID, productID)
	}
	return nil
}

func (f *ledgerFeature) rejectedWith(target error) func() error {
	return func() error {
		if !errors.Is(f.err, target) {
			return fmt.Errorf("error esperado %q, obtenido %v", target, f.err)
		}
		return nil
	}
}

func initializeLedgerScenario(ctx *godog.ScenarioContext) {
	f := &ledgerFeature{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	ctx.Step(`^no hay stock registrado$`, f.noStock)
	ctx.Step(`^llega un envío incoming de (-?\d+) unidades del producto "([^"]*)" a la bodega "([^"]*)"$`, f.incoming)
	ctx.Step(`^sale un envío outgoing de (-?\d+) unidades del producto "([^"]*)" desde la bodega "([^"]*)"$`, f.outgoing)
	ctx.Step(`^el stock del producto "([^"]*)" en la bodega "([^"]*)" es (\d+)$`, f.stockIs)
	ctx.Step(`^no hay fila de stock para el producto "([^"]*)" en la bodega "([^"]*)"$`, f.noRow)
	ctx.Step(`^el envío es rechazado por stock insuficiente$`, f.rejectedWith(domain.ErrInsufficientStock))
	ctx.Step(`^el envío es rechazado porque no existe stock$`, f.rejectedWith(domain.ErrStockNotFound))
	ctx.Step(`^el envío es rechazado por datos inválidos$`, f.rejectedWith(domain.ErrInvalidInput))
}

func TestStockLedgerFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "stock-ledger",
		ScenarioInitializer: initializeLedgerScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("los escenarios de stock fallaron")
	}
}
