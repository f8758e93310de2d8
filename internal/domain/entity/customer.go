package entity

import "time"

// Customer representa un cliente. UserID enlaza opcionalmente al usuario que lo administra.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	UserID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
