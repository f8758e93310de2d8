package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var (
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
	_ repository.LocationRepository  = (*LocationRepo)(nil)
)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, name, address, location_id, created_at, updated_at`

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(&w.ID, &w.Name, &w.Address, &w.LocationID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	_, err := r.q.Exec(ctx, `INSERT INTO warehouses (`+warehouseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.Name, w.Address, w.LocationID, w.CreatedAt, w.UpdatedAt)
	return mapError("insert warehouse", err)
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	return queryOne(ctx, r.q, "get warehouse", `SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, scanWarehouse, id)
}

// Update actualiza nombre, dirección y ubicación.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	tag, err := r.q.Exec(ctx, `UPDATE warehouses SET name = $2, address = $3, location_id = $4, updated_at = $5 WHERE id = $1`,
		w.ID, w.Name, w.Address, w.LocationID, w.UpdatedAt)
	return mustAffect(tag, err, "update warehouse")
}

// List lista bodegas con paginación.
func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	return queryList(ctx, r.q, "list warehouses",
		`SELECT `+warehouseColumns+` FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`, scanWarehouse, limit, offset)
}

// Delete elimina una bodega. ErrConflict si tiene stock o envíos.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "warehouses", id)
}

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, name, address, city, country, created_at, updated_at`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	if err := row.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	_, err := r.q.Exec(ctx, `INSERT INTO locations (`+locationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.Name, l.Address, l.City, l.Country, l.CreatedAt, l.UpdatedAt)
	return mapError("insert location", err)
}

func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	return queryOne(ctx, r.q, "get location", `SELECT `+locationColumns+` FROM locations WHERE id = $1`, scanLocation, id)
}

func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	tag, err := r.q.Exec(ctx, `UPDATE locations SET name = $2, address = $3, city = $4, country = $5, updated_at = $6 WHERE id = $1`,
		l.ID, l.Name, l.Address, l.City, l.Country, l.UpdatedAt)
	return mustAffect(tag, err, "update location")
}

func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	return queryList(ctx, r.q, "list locations",
		`SELECT `+locationColumns+` FROM locations ORDER BY name LIMIT $1 OFFSET $2`, scanLocation, limit, offset)
}

// Delete elimina una ubicación; las bodegas que la referencian quedan sin ubicación (ON DELETE SET NULL).
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "locations", id)
}
