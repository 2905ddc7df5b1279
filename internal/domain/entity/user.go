package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Estados válidos para User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario de la consola de administración.
type User struct {
	ID        string
	Username  string
	Email     string
	Role      string // admin, user
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
