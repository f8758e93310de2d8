package inventory

import (
	"context"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// StockUseCase consultas de stock y de envíos registrados (solo lectura).
type StockUseCase struct {
	stockRepo     repository.StockRepository
	shipmentRepo  repository.ShipmentRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	shipmentRepo repository.ShipmentRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, shipmentRepo: shipmentRepo, warehouseRepo: warehouseRepo}
}

// List lista filas de stock filtradas por bodega y/o producto.
func (uc *StockUseCase) List(ctx context.Context, filter entity.StockFilter, limit, offset int) (*dto.ListResponse[dto.StockResponse], error) {
	rows, err := uc.stockRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(rows))
	for _, s := range rows {
		items = append(items, ToStockResponse(s))
	}
	return dto.NewListResponse(items, limit, offset), nil
}

// ListByWarehouse lista el stock de una bodega existente.
func (uc *StockUseCase) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) (*dto.ListResponse[dto.StockResponse], error) {
	wh, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	return uc.List(ctx, entity.StockFilter{WarehouseID: warehouseID}, limit, offset)
}

// LowStock devuelve los productos cuyo stock total está por debajo de su mínimo.
func (uc *StockUseCase) LowStock(ctx context.Context) ([]dto.LowStockResponse, error) {
	rows, err := uc.stockRepo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockResponse{
			ProductID: r.ProductID,
			Code:      r.ProductCode,
			Name:      r.ProductName,
			MinStock:  r.MinStock,
			OnHand:    r.OnHand,
			Shortage:  r.MinStock - r.OnHand,
		})
	}
	return out, nil
}

// GetShipment obtiene un envío por ID; nil si no existe.
func (uc *StockUseCase) GetShipment(ctx context.Context, id string) (*dto.ShipmentResponse, error) {
	s, err := uc.shipmentRepo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	out := ToShipmentResponse(s)
	return &out, nil
}

// ListShipments lista envíos filtrados.
func (uc *StockUseCase) ListShipments(ctx context.Context, filter entity.ShipmentFilter, limit, offset int) (*dto.ListResponse[dto.ShipmentResponse], error) {
	if filter.Type != "" && !entity.IsValidShipmentType(filter.Type) {
		return nil, domain.Invalid("type", "debe ser incoming u outgoing")
	}
	rows, err := uc.shipmentRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(rows))
	for _, s := range rows {
		items = append(items, ToShipmentResponse(s))
	}
	return dto.NewListResponse(items, limit, offset), nil
}
