package repository

import (
	"context"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// orderType vacío en List devuelve todos los tipos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, orderType string, limit, offset int) ([]*entity.Order, error)
	Delete(ctx context.Context, id string) error
}

// QuotationRepository define el puerto de persistencia para Quotation.
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id string) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	List(ctx context.Context, limit, offset int) ([]*entity.Quotation, error)
	Delete(ctx context.Context, id string) error
}
