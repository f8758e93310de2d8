package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes de compra, venta y traslado.
// Total = Quantity * UnitPrice se calcula aquí; el cliente no lo envía.
type OrderUseCase struct {
	repo          repository.OrderRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	customerRepo  repository.CustomerRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
) *OrderUseCase {
	return &OrderUseCase{
		repo:          repo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		customerRepo:  customerRepo,
	}
}

// Create crea una orden del tipo indicado en la entrada.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	order := &entity.Order{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, order, in, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// CreateTyped crea una orden forzando el tipo (colecciones /purchase-orders, /sales-orders, /transfer-orders).
func (uc *OrderUseCase) CreateTyped(ctx context.Context, orderType string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	if in.OrderType != "" && in.OrderType != orderType {
		return nil, domain.Invalid("order_type", "no coincide con la colección ("+orderType+")")
	}
	in.OrderType = orderType
	return uc.Create(ctx, in)
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil || order == nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update reemplaza la orden completa y recalcula el total.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil || order == nil {
		return nil, err
	}
	if err := uc.apply(ctx, order, in, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes; orderType vacío devuelve todos los tipos.
func (uc *OrderUseCase) List(ctx context.Context, orderType string, limit, offset int) (*dto.ListResponse[dto.OrderResponse], error) {
	if orderType != "" && !entity.IsValidOrderType(orderType) {
		return nil, domain.Invalid("order_type", "tipo de orden desconocido")
	}
	list, err := uc.repo.List(ctx, orderType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return dto.NewListResponse(items, limit, offset), nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// apply valida la entrada y la vuelca sobre order.
func (uc *OrderUseCase) apply(ctx context.Context, order *entity.Order, in dto.OrderRequest, now time.Time) error {
	if !entity.IsValidOrderType(in.OrderType) {
		return domain.Invalid("order_type", "debe ser purchase_order, sale_order o transfer_order")
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.IsValidOrderStatus(status) {
		return domain.Invalid("status", "estado de orden desconocido")
	}
	if err := required("product", in.ProductID); err != nil {
		return err
	}
	if err := required("warehouse", in.WarehouseID); err != nil {
		return err
	}
	if err := positive("quantity", in.Quantity); err != nil {
		return err
	}
	if err := nonNegative("unit_price", in.UnitPrice); err != nil {
		return err
	}
	date, err := dto.ParseDate("order_date", in.OrderDate)
	if err != nil {
		return err
	}

	supplierID := dto.BlankToNil(in.SupplierID)
	customerID := dto.BlankToNil(in.CustomerID)
	destinationID := dto.BlankToNil(in.DestinationWarehouseID)
	switch in.OrderType {
	case entity.OrderTypePurchase:
		if supplierID == nil {
			return domain.Invalid("supplier", "es requerido en órdenes de compra")
		}
	case entity.OrderTypeSale:
		if customerID == nil {
			return domain.Invalid("customer", "es requerido en órdenes de venta")
		}
	case entity.OrderTypeTransfer:
		if destinationID == nil {
			return domain.Invalid("destination_warehouse", "es requerido en traslados")
		}
		if *destinationID == in.WarehouseID {
			return domain.Invalid("destination_warehouse", "debe ser distinta de la bodega origen")
		}
	}

	if _, err := mustExist(ctx, in.ProductID, uc.productRepo.GetByID); err != nil {
		return err
	}
	if _, err := mustExist(ctx, in.WarehouseID, uc.warehouseRepo.GetByID); err != nil {
		return err
	}
	if err := optionalRef(ctx, supplierID, uc.supplierRepo.GetByID); err != nil {
		return err
	}
	if err := optionalRef(ctx, customerID, uc.customerRepo.GetByID); err != nil {
		return err
	}
	if err := optionalRef(ctx, destinationID, uc.warehouseRepo.GetByID); err != nil {
		return err
	}

	order.Type = in.OrderType
	order.Status = status
	order.ProductID = in.ProductID
	order.Quantity = in.Quantity
	order.UnitPrice = in.UnitPrice
	order.Total = in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
	order.SupplierID = supplierID
	order.CustomerID = customerID
	order.WarehouseID = in.WarehouseID
	order.DestinationWarehouseID = destinationID
	order.Notes = in.Notes
	order.OrderDate = now
	if date != nil {
		order.OrderDate = *date
	}
	order.UpdatedAt = now
	return nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                     o.ID,
		OrderType:              o.Type,
		Status:                 o.Status,
		ProductID:              o.ProductID,
		Quantity:               o.Quantity,
		UnitPrice:              o.UnitPrice,
		Total:                  o.Total,
		SupplierID:             o.SupplierID,
		CustomerID:             o.CustomerID,
		WarehouseID:            o.WarehouseID,
		DestinationWarehouseID: o.DestinationWarehouseID,
		OrderDate:              o.OrderDate,
		Notes:                  o.Notes,
		CreatedAt:              o.CreatedAt,
		UpdatedAt:              o.UpdatedAt,
	}
}
