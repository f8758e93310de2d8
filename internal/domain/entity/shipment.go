package entity

import "time"

// Tipos de envío: entrada (proveedor → bodega) o salida (bodega → cliente).
const (
	ShipmentIncoming = "incoming"
	ShipmentOutgoing = "outgoing"
)

// Shipment representa un envío registrado. Su registro ajusta el stock de (WarehouseID, ProductID).
type Shipment struct {
	ID           string
	Type         string // incoming, outgoing
	ProductID    string
	WarehouseID  string
	OrderID      *string
	Quantity     int64
	ShipmentDate time.Time
	Notes        string
	CreatedAt    time.Time
}

// IsValidShipmentType indica si t es un tipo de envío soportado.
func IsValidShipmentType(t string) bool {
	return t == ShipmentIncoming || t == ShipmentOutgoing
}

// ShipmentFilter filtros para listar envíos. Campos vacíos no filtran.
type ShipmentFilter struct {
	WarehouseID string
	ProductID   string
	Type        string
}
