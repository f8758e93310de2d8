package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, phone, address, user_id, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.q.Exec(ctx, `INSERT INTO customers (`+customerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.UserID, c.CreatedAt, c.UpdatedAt)
	return mapError("insert customer", err)
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return queryOne(ctx, r.q, "get customer", `SELECT `+customerColumns+` FROM customers WHERE id = $1`, scanCustomer, id)
}

// Update actualiza los datos del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE customers SET name = $2, email = $3, phone = $4, address = $5, user_id = $6, updated_at = $7 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.UserID, c.UpdatedAt)
	return mustAffect(tag, err, "update customer")
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	return queryList(ctx, r.q, "list customers",
		`SELECT `+customerColumns+` FROM customers ORDER BY name LIMIT $1 OFFSET $2`, scanCustomer, limit, offset)
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "customers", id)
}

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, email, phone, address, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `INSERT INTO suppliers (`+supplierColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.CreatedAt, s.UpdatedAt)
	return mapError("insert supplier", err)
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return queryOne(ctx, r.q, "get supplier", `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, scanSupplier, id)
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE suppliers SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6 WHERE id = $1`,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.UpdatedAt)
	return mustAffect(tag, err, "update supplier")
}

func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return queryList(ctx, r.q, "list suppliers",
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`, scanSupplier, limit, offset)
}

// Delete elimina un proveedor; sus productos quedan sin proveedor (ON DELETE SET NULL).
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "suppliers", id)
}
