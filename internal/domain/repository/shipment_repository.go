package repository

import (
	"context"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// ShipmentRepository define el puerto de persistencia para envíos (solo inserción y lectura).
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
	List(ctx context.Context, filter entity.ShipmentFilter, limit, offset int) ([]*entity.Shipment, error)
}
