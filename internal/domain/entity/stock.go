package entity

import "time"

// Stock representa la existencia de un producto en una bodega.
// La clave es (WarehouseID, ProductID) y Quantity nunca es negativa.
type Stock struct {
	WarehouseID string
	ProductID   string
	Quantity    int64
	UpdatedAt   time.Time
}

// StockKey identifica una fila de stock.
type StockKey struct {
	WarehouseID string
	ProductID   string
}

// Key devuelve la clave compuesta de la fila.
func (s *Stock) Key() StockKey {
	return StockKey{WarehouseID: s.WarehouseID, ProductID: s.ProductID}
}

// StockFilter filtros para listar stock. Campos vacíos no filtran.
type StockFilter struct {
	WarehouseID string
	ProductID   string
}

// LowStockItem producto cuyo stock total está por debajo de su mínimo.
type LowStockItem struct {
	ProductID   string
	ProductCode string
	ProductName string
	MinStock    int64
	OnHand      int64
}
