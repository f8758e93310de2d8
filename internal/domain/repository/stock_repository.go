package repository

import (
	"context"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// StockRepository define el puerto de stock por bodega+producto.
// Los métodos *ForUpdate solo tienen sentido dentro de una transacción (ver TxRunner).
type StockRepository interface {
	// GetForUpdate bloquea y devuelve la fila; nil si no existe.
	GetForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error)
	// GetOrCreateForUpdate crea la fila con cantidad 0 si no existe y la bloquea.
	GetOrCreateForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error)
	// Save persiste la cantidad de una fila existente.
	Save(ctx context.Context, stock *entity.Stock) error
	Get(ctx context.Context, warehouseID, productID string) (*entity.Stock, error)
	List(ctx context.Context, filter entity.StockFilter, limit, offset int) ([]*entity.Stock, error)
	ListBelowMinimum(ctx context.Context) ([]entity.LowStockItem, error)
}
