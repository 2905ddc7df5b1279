package memory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// RoomCatalog catálogo de habitaciones de solo lectura para la web pública.
// Se siembra al construir y no tiene operaciones de escritura.
type RoomCatalog struct {
	rooms []*entity.Room
}

// NewRoomCatalog construye el catálogo con las habitaciones indicadas; sin
// argumentos usa el catálogo sembrado del hotel.
func NewRoomCatalog(rooms ...*entity.Room) *RoomCatalog {
	if len(rooms) == 0 {
		rooms = seedRooms()
	}
	return &RoomCatalog{rooms: rooms}
}

// List devuelve el catálogo completo.
func (c *RoomCatalog) List() ([]*entity.Room, error) {
	return c.rooms, nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (c *RoomCatalog) GetByID(id int) (*entity.Room, error) {
	for _, r := range c.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

// Search filtra el catálogo. Todos los filtros son opcionales y se combinan
// con AND; el texto se compara en minúsculas por contención.
func (c *RoomCatalog) Search(q repository.RoomSearchQuery) ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(c.rooms))
	query := strings.ToLower(q.Query)
	location := strings.ToLower(q.Location)
	for _, r := range c.rooms {
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) &&
			!strings.Contains(strings.ToLower(r.Location), query) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(r.Location), location) {
			continue
		}
		if q.HasPriceRange {
			price, _ := r.Price.Float64()
			if price < q.PriceMin || price > q.PriceMax {
				continue
			}
		}
		if q.Guests > 0 && r.MaxGuests < q.Guests {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func seedRooms() []*entity.Room {
	return []*entity.Room{
		{
			ID:          1,
			Title:       "Deluxe Ocean View",
			Price:       decimal.NewFromInt(299),
			Image:       "/img/rooms/0dad4e81.webp",
			Description: "Spacious room with stunning ocean views",
			FullDescription: "Experience luxury and comfort in our Deluxe Ocean View room. " +
				"This spacious room features floor-to-ceiling windows offering breathtaking " +
				"ocean views, a king-size bed, and a private balcony.",
			Location:  "Beachfront",
			Amenities: []string{"Ocean View", "King Size Bed", "Private Balcony", "Free WiFi", "Smart TV", "Mini Bar", "Rain Shower"},
			Size:      "45 sqm",
			MaxGuests: 2,
		},
		{
			ID:          2,
			Title:       "Premium Suite",
			Price:       decimal.NewFromInt(499),
			Image:       "/img/rooms/c0dc64b7.avif",
			Description: "Luxury suite with separate living area",
			FullDescription: "Our Premium Suite offers the ultimate luxury experience with a " +
				"separate living area, perfect for both business and leisure travelers. " +
				"Enjoy premium amenities including a Jacuzzi, a fully equipped kitchen, and a private terrace.",
			Location:  "City Center",
			Amenities: []string{"Separate Living Area", "King Size Bed", "Jacuzzi", "Kitchen", "Private Terrace", "Dining Area"},
			Size:      "80 sqm",
			MaxGuests: 4,
		},
		{
			ID:          3,
			Title:       "Family Room",
			Price:       decimal.NewFromInt(399),
			Image:       "/img/rooms/02d1cac2.webp",
			Description: "Perfect for family stays",
			FullDescription: "Our Family Room is designed to accommodate families with comfort " +
				"and style. The room features two connecting bedrooms, a spacious living area, " +
				"and a private balcony.",
			Location:  "Resort Area",
			Amenities: []string{"Two Bedrooms", "Living Area", "Gaming Console", "Mini Kitchen", "Private Balcony", "Family Bathroom"},
			Size:      "60 sqm",
			MaxGuests: 4,
		},
	}
}
