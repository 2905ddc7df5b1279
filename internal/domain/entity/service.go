package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Service.
const (
	ServiceStatusAvailable   = "available"
	ServiceStatusUnavailable = "unavailable"
)

// Service servicio ofrecido por el hotel (spa, restaurante, lavandería...).
type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Status      string // available, unavailable
	ImageURL    string // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
