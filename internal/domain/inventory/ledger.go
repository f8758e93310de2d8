package inventory

import (
	"context"
	"math"
	"time"

	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// StockStore es el subconjunto de repository.StockRepository que necesita el libro de stock.
// Debe estar atado a una transacción abierta: los métodos *ForUpdate bloquean la fila hasta el Commit.
type StockStore interface {
	GetForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error)
	GetOrCreateForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error)
	Save(ctx context.Context, stock *entity.Stock) error
}

// ApplyShipment ajusta el stock de (WarehouseID, ProductID) según el envío.
//
//   - incoming: crea la fila si no existe y suma la cantidad.
//   - outgoing: exige que la fila exista (ErrStockNotFound) y que alcance la cantidad
//     (InsufficientStockError); en caso contrario no modifica nada.
//
// Cantidades <= 0 o tipos desconocidos devuelven ErrInvalidInput sin tocar el store.
func ApplyShipment(ctx context.Context, store StockStore, shipment entity.Shipment) (*entity.Stock, error) {
	if shipment.WarehouseID == "" {
		return nil, domain.Invalid("warehouse", "es requerido")
	}
	if shipment.ProductID == "" {
		return nil, domain.Invalid("product", "es requerido")
	}
	if shipment.Quantity <= 0 {
		return nil, domain.Invalid("quantity", "debe ser mayor que cero")
	}

	switch shipment.Type {
	case entity.ShipmentIncoming:
		return applyIncoming(ctx, store, shipment)
	case entity.ShipmentOutgoing:
		return applyOutgoing(ctx, store, shipment)
	}
	return nil, domain.Invalid("shipment_type", "debe ser incoming u outgoing")
}

func applyIncoming(ctx context.Context, store StockStore, shipment entity.Shipment) (*entity.Stock, error) {
	stock, err := store.GetOrCreateForUpdate(ctx, shipment.WarehouseID, shipment.ProductID)
	if err != nil {
		return nil, err
	}
	if shipment.Quantity > math.MaxInt64-stock.Quantity {
		return nil, domain.Invalid("quantity", "excede el máximo de stock representable")
	}
	stock.Quantity += shipment.Quantity
	stock.UpdatedAt = time.Now()
	if err := store.Save(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func applyOutgoing(ctx context.Context, store StockStore, shipment entity.Shipment) (*entity.Stock, error) {
	stock, err := store.GetForUpdate(ctx, shipment.WarehouseID, shipment.ProductID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrStockNotFound
	}
	if stock.Quantity < shipment.Quantity {
		return nil, &domain.InsufficientStockError{
			WarehouseID: shipment.WarehouseID,
			ProductID:   shipment.ProductID,
			Available:   stock.Quantity,
			Requested:   shipment.Quantity,
		}
	}
	stock.Quantity -= shipment.Quantity
	stock.UpdatedAt = time.Now()
	if err := store.Save(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}
