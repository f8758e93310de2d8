package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// LocationID es opcional (ubicación física registrada en locations).
type Warehouse struct {
	ID         string
	Name       string
	Address    string
	LocationID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Location representa una ubicación física (ciudad, sede) a la que pertenecen bodegas.
type Location struct {
	ID        string
	Name      string
	Address   string
	City      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
