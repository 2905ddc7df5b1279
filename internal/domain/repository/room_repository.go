package repository

import "github.com/jhoicas/hotel-admin-api/internal/domain/entity"

// RoomSearchQuery filtros del buscador público de habitaciones.
// PriceMin/PriceMax solo aplican si HasPriceRange es true.
type RoomSearchQuery struct {
	Query         string
	Location      string
	HasPriceRange bool
	PriceMin      float64
	PriceMax      float64
	Guests        int
}

// RoomRepository define el puerto de lectura del catálogo de habitaciones.
type RoomRepository interface {
	List() ([]*entity.Room, error)
	GetByID(id int) (*entity.Room, error)
	Search(q RoomSearchQuery) ([]*entity.Room, error)
}
