package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/miinventory-api/internal/domain/entity"
	"github.com/jhoicas/miinventory-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo persiste envíos. Solo inserción y lectura: un envío registrado no se modifica.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, shipment_type, product_id, warehouse_id, order_id, quantity, shipment_date, notes, created_at`

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(&s.ID, &s.Type, &s.ProductID, &s.WarehouseID, &s.OrderID, &s.Quantity, &s.ShipmentDate, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta el envío.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Type, s.ProductID, s.WarehouseID, s.OrderID, s.Quantity, s.ShipmentDate, s.Notes, s.CreatedAt,
	)
	return mapError("insert shipment", err)
}

// GetByID obtiene un envío por ID; nil si no existe.
func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	s, err := scanShipment(r.q.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// List lista envíos filtrados, más recientes primero.
func (r *ShipmentRepo) List(ctx context.Context, f entity.ShipmentFilter, limit, offset int) ([]*entity.Shipment, error) {
	var w filter
	w.eq("warehouse_id", f.WarehouseID)
	w.eq("product_id", f.ProductID)
	w.eq("shipment_type", f.Type)
	query := `SELECT ` + shipmentColumns + ` FROM shipments` + w.where() +
		` ORDER BY shipment_date DESC, created_at DESC` + w.page(limit, offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
