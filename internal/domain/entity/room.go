package entity

import "github.com/shopspring/decimal"

// Room habitación del catálogo público. El catálogo es estático: las
// habitaciones no se administran desde la consola, solo se consultan.
type Room struct {
	ID              int
	Title           string
	Price           decimal.Decimal
	Image           string
	Description     string
	FullDescription string
	Location        string
	Amenities       []string
	Size            string
	MaxGuests       int
}
