package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository     = (*OrderRepo)(nil)
	_ repository.QuotationRepository = (*QuotationRepo)(nil)
)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_type, status, product_id, quantity, unit_price, total, supplier_id, customer_id,
	warehouse_id, destination_warehouse_id, order_date, notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.Type, &o.Status, &o.ProductID, &o.Quantity, &o.UnitPrice, &o.Total, &o.SupplierID, &o.CustomerID,
		&o.WarehouseID, &o.DestinationWarehouseID, &o.OrderDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Type, o.Status, o.ProductID, o.Quantity, o.UnitPrice, o.Total, o.SupplierID, o.CustomerID,
		o.WarehouseID, o.DestinationWarehouseID, o.OrderDate, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	return mapError("insert order", err)
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return queryOne(ctx, r.q, "get order", `SELECT `+orderColumns+` FROM orders WHERE id = $1`, scanOrder, id)
}

// Update reemplaza la orden.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders SET order_type = $2, status = $3, product_id = $4, quantity = $5, unit_price = $6, total = $7,
			supplier_id = $8, customer_id = $9, warehouse_id = $10, destination_warehouse_id = $11,
			order_date = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.Type, o.Status, o.ProductID, o.Quantity, o.UnitPrice, o.Total,
		o.SupplierID, o.CustomerID, o.WarehouseID, o.DestinationWarehouseID,
		o.OrderDate, o.Notes, o.UpdatedAt,
	)
	return mustAffect(tag, err, "update order")
}

// List lista órdenes, opcionalmente de un tipo, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, orderType string, limit, offset int) ([]*entity.Order, error) {
	var w filter
	w.eq("order_type", orderType)
	query := `SELECT ` + orderColumns + ` FROM orders` + w.where() + ` ORDER BY order_date DESC` + w.page(limit, offset)
	return queryList(ctx, r.q, "list orders", query, scanOrder, w.args...)
}

// Delete elimina una orden. ErrConflict si tiene envíos asociados.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "orders", id)
}

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador.
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, customer_id, product_id, quantity, unit_price, total, valid_until, status, notes, created_at, updated_at`

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	err := row.Scan(&q.ID, &q.CustomerID, &q.ProductID, &q.Quantity, &q.UnitPrice, &q.Total,
		&q.ValidUntil, &q.Status, &q.Notes, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	query := `INSERT INTO quotations (` + quotationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.CustomerID, q.ProductID, q.Quantity, q.UnitPrice, q.Total, q.ValidUntil, q.Status, q.Notes, q.CreatedAt, q.UpdatedAt)
	return mapError("insert quotation", err)
}

func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	return queryOne(ctx, r.q, "get quotation", `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, scanQuotation, id)
}

func (r *QuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	query := `
		UPDATE quotations SET customer_id = $2, product_id = $3, quantity = $4, unit_price = $5, total = $6,
			valid_until = $7, status = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		q.ID, q.CustomerID, q.ProductID, q.Quantity, q.UnitPrice, q.Total, q.ValidUntil, q.Status, q.Notes, q.UpdatedAt)
	return mustAffect(tag, err, "update quotation")
}

func (r *QuotationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Quotation, error) {
	return queryList(ctx, r.q, "list quotations",
		`SELECT `+quotationColumns+` FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`, scanQuotation, limit, offset)
}

func (r *QuotationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "quotations", id)
}
