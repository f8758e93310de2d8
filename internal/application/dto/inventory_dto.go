package dto

import "time"

// RegisterShipmentRequest body para POST /api/shipments.
type RegisterShipmentRequest struct {
	ShipmentType string  `json:"shipment_type"`
	ProductID    string  `json:"product"`
	WarehouseID  string  `json:"warehouse"`
	Quantity     int64   `json:"quantity"`
	ShipmentDate string  `json:"shipment_date"`
	OrderID      *string `json:"order,omitempty"`
	Notes        string  `json:"notes"`
}

// ShipmentResponse salida de un envío.
type ShipmentResponse struct {
	ID           string    `json:"id"`
	ShipmentType string    `json:"shipment_type"`
	ProductID    string    `json:"product"`
	WarehouseID  string    `json:"warehouse"`
	Quantity     int64     `json:"quantity"`
	ShipmentDate time.Time `json:"shipment_date"`
	OrderID      *string   `json:"order"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterShipmentResponse envío registrado más el stock resultante del par (bodega, producto).
type RegisterShipmentResponse struct {
	Shipment ShipmentResponse `json:"shipment"`
	Stock    StockResponse    `json:"stock"`
}

// StockResponse existencia de un producto en una bodega.
type StockResponse struct {
	WarehouseID string    `json:"warehouse"`
	ProductID   string    `json:"product"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LowStockResponse producto bajo su stock mínimo (suma de todas las bodegas).
type LowStockResponse struct {
	ProductID string `json:"product"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	MinStock  int64  `json:"min_stock"`
	OnHand    int64  `json:"on_hand"`
	Shortage  int64  `json:"shortage"`
}
