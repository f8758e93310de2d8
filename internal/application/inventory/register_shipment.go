package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	domaininv "github.com/jhoicas/miinventory-api/internal/domain/inventory"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// RegisterShipmentUseCase registra envíos y ajusta el stock en la misma transacción.
// La fila (bodega, producto) queda bloqueada (SELECT FOR UPDATE) desde la lectura hasta el Commit.
type RegisterShipmentUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	orderRepo     repository.OrderRepository
	log           zerolog.Logger
}

// NewRegisterShipmentUseCase construye el caso de uso.
func NewRegisterShipmentUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	log zerolog.Logger,
) *RegisterShipmentUseCase {
	return &RegisterShipmentUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		orderRepo:     orderRepo,
		log:           log.With().Str("component", "shipments").Logger(),
	}
}

// Register valida el envío, verifica referencias y aplica el ajuste de stock.
// Errores: ErrInvalidInput, ErrNotFound (producto, bodega u orden), ErrStockNotFound, ErrInsufficientStock.
func (uc *RegisterShipmentUseCase) Register(ctx context.Context, in dto.RegisterShipmentRequest) (*dto.RegisterShipmentResponse, error) {
	if !entity.IsValidShipmentType(in.ShipmentType) {
		return nil, domain.Invalid("shipment_type", "debe ser incoming u outgoing")
	}
	if in.ProductID == "" {
		return nil, domain.Invalid("product", "es requerido")
	}
	if in.WarehouseID == "" {
		return nil, domain.Invalid("warehouse", "es requerido")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity", "debe ser mayor que cero")
	}
	date, err := dto.ParseDate("shipment_date", in.ShipmentDate)
	if err != nil {
		return nil, err
	}

	// Validar que producto, bodega y orden existan
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	orderID := dto.BlankToNil(in.OrderID)
	if orderID != nil {
		order, err := uc.orderRepo.GetByID(ctx, *orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	shipment := &entity.Shipment{
		ID:           uuid.New().String(),
		Type:         in.ShipmentType,
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		OrderID:      orderID,
		Quantity:     in.Quantity,
		ShipmentDate: now,
		Notes:        in.Notes,
		CreatedAt:    now,
	}
	if date != nil {
		shipment.ShipmentDate = *date
	}

	var stock *entity.Stock
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, shipmentRepo repository.ShipmentRepository) error {
		var err error
		stock, err = domaininv.ApplyShipment(ctx, stockRepo, *shipment)
		if err != nil {
			return err
		}
		return shipmentRepo.Create(ctx, shipment)
	})
	if err != nil {
		uc.logRejected(shipment, err)
		return nil, err
	}

	uc.log.Info().
		Str("shipment_id", shipment.ID).
		Str("type", shipment.Type).
		Str("warehouse_id", shipment.WarehouseID).
		Str("product_id", shipment.ProductID).
		Int64("quantity", shipment.Quantity).
		Int64("stock", stock.Quantity).
		Msg("envío registrado")

	return &dto.RegisterShipmentResponse{
		Shipment: ToShipmentResponse(shipment),
		Stock:    ToStockResponse(stock),
	}, nil
}

func (uc *RegisterShipmentUseCase) logRejected(shipment *entity.Shipment, err error) {
	ev := uc.log.Warn()
	if !errors.Is(err, domain.ErrInsufficientStock) && !errors.Is(err, domain.ErrStockNotFound) && !errors.Is(err, domain.ErrInvalidInput) {
		ev = uc.log.Error()
	}
	ev.Err(err).
		Str("type", shipment.Type).
		Str("warehouse_id", shipment.WarehouseID).
		Str("product_id", shipment.ProductID).
		Int64("quantity", shipment.Quantity).
		Msg("envío rechazado")
}

// ToShipmentResponse mapea la entidad a su DTO.
func ToShipmentResponse(s *entity.Shipment) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		ID:           s.ID,
		ShipmentType: s.Type,
		ProductID:    s.ProductID,
		WarehouseID:  s.WarehouseID,
		Quantity:     s.Quantity,
		ShipmentDate: s.ShipmentDate,
		OrderID:      s.OrderID,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}

// ToStockResponse mapea la entidad a su DTO.
func ToStockResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		WarehouseID: s.WarehouseID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}
