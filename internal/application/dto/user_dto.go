package dto

import "time"

// ProfileDTO perfil de usuario.
type ProfileDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Photo     string `json:"photo"`
}

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Age     int         `json:"age"`
	Profile *ProfileDTO `json:"profile,omitempty"`
}

// UpdateUserRequest entrada para actualizar un usuario. El email no se modifica.
type UpdateUserRequest struct {
	Name    *string     `json:"name"`
	Age     *int        `json:"age"`
	Profile *ProfileDTO `json:"profile,omitempty"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Age       int        `json:"age"`
	Profile   ProfileDTO `json:"profile"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
