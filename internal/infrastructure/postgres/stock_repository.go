package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Los métodos *ForUpdate deben usarse con una tx (ver TxRunner); con el pool el bloqueo dura solo la sentencia.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `warehouse_id, product_id, quantity, updated_at`

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	if err := row.Scan(&s.WarehouseID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). nil si no existe.
func (r *StockRepo) GetForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock
		WHERE warehouse_id = $1 AND product_id = $2
		FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(ctx, query, warehouseID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// GetOrCreateForUpdate inserta la fila con cantidad 0 si falta y luego la bloquea.
// ON CONFLICT DO NOTHING evita el error de clave duplicada cuando dos entradas concurrentes crean el mismo par.
func (r *StockRepo) GetOrCreateForUpdate(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	insert := `
		INSERT INTO stock (warehouse_id, product_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (warehouse_id, product_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, warehouseID, productID); err != nil {
		return nil, mapError("create stock", err)
	}
	s, err := r.GetForUpdate(ctx, warehouseID, productID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("create stock: fila (%s, %s) no visible tras insertar", warehouseID, productID)
	}
	return s, nil
}

// Save persiste la cantidad de una fila existente. El CHECK (quantity >= 0) se traduce a ErrInsufficientStock.
func (r *StockRepo) Save(ctx context.Context, stock *entity.Stock) error {
	query := `
		UPDATE stock SET quantity = $3, updated_at = $4
		WHERE warehouse_id = $1 AND product_id = $2`
	tag, err := r.q.Exec(ctx, query, stock.WarehouseID, stock.ProductID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return mapError("save stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStockNotFound
	}
	return nil
}

// Get obtiene la fila sin bloquear. nil si no existe.
func (r *StockRepo) Get(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE warehouse_id = $1 AND product_id = $2`
	s, err := scanStock(r.q.QueryRow(ctx, query, warehouseID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// List lista filas de stock filtradas por bodega y/o producto.
func (r *StockRepo) List(ctx context.Context, f entity.StockFilter, limit, offset int) ([]*entity.Stock, error) {
	var w filter
	w.eq("warehouse_id", f.WarehouseID)
	w.eq("product_id", f.ProductID)
	query := `SELECT ` + stockColumns + ` FROM stock` + w.where() +
		` ORDER BY warehouse_id, product_id` + w.page(limit, offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListBelowMinimum suma el stock de todas las bodegas por producto y devuelve los que están bajo min_stock.
func (r *StockRepo) ListBelowMinimum(ctx context.Context) ([]entity.LowStockItem, error) {
	query := `
		SELECT p.id, p.code, p.name, p.min_stock, COALESCE(SUM(s.quantity), 0)::bigint AS on_hand
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		WHERE p.min_stock > 0
		GROUP BY p.id, p.code, p.name, p.min_stock
		HAVING COALESCE(SUM(s.quantity), 0) < p.min_stock
		ORDER BY p.min_stock - COALESCE(SUM(s.quantity), 0) DESC, p.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var list []entity.LowStockItem
	for rows.Next() {
		var it entity.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.ProductCode, &it.ProductName, &it.MinStock, &it.OnHand); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
