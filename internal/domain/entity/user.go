package entity

import "time"

// User representa un usuario del sistema. El email es único.
type User struct {
	ID        string
	Name      string
	Email     string
	Age       int
	Profile   UserProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfile datos opcionales de perfil (uno a uno con User).
type UserProfile struct {
	FirstName string
	LastName  string
	Phone     string
	Photo     string
}
