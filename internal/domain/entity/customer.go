package entity

import "time"

// Estados válidos para Customer.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer representa un huésped o cliente del hotel.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
