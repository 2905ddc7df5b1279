package dto

import "github.com/shopspring/decimal"

// RoomResponse habitación del catálogo público.
type RoomResponse struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Price           decimal.Decimal `json:"price"`
	Image           string          `json:"image"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription,omitempty"`
	Location        string          `json:"location"`
	Amenities       []string        `json:"amenities"`
	Size            string          `json:"size,omitempty"`
	MaxGuests       int             `json:"maxGuests"`
}
