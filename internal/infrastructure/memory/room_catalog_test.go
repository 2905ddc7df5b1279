package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
	"github.com/jhoicas/hotel-admin-api/internal/infrastructure/memory"
)

func TestRoomCatalog_ListYGetByID(t *testing.T) {
	catalog := memory.NewRoomCatalog()

	rooms, err := catalog.List()
	require.NoError(t, err)
	require.NotEmpty(t, rooms)

	room, err := catalog.GetByID(rooms[0].ID)
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, rooms[0].Title, room.Title)

	missing, err := catalog.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRoomCatalog_SearchPorTexto(t *testing.T) {
	catalog := memory.NewRoomCatalog()

	rooms, err := catalog.Search(repository.RoomSearchQuery{Query: "ocean"})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Deluxe Ocean View", rooms[0].Title)
}

func TestRoomCatalog_SearchPorRangoDePrecio(t *testing.T) {
	catalog := memory.NewRoomCatalog()

	rooms, err := catalog.Search(repository.RoomSearchQuery{
		HasPriceRange: true,
		PriceMin:      300,
		PriceMax:      500,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	for _, r := range rooms {
		price, _ := r.Price.Float64()
		assert.GreaterOrEqual(t, price, 300.0)
		assert.LessOrEqual(t, price, 500.0)
	}
}

func TestRoomCatalog_SearchPorHuespedes(t *testing.T) {
	catalog := memory.NewRoomCatalog()

	rooms, err := catalog.Search(repository.RoomSearchQuery{Guests: 4})
	require.NoError(t, err)
	require.NotEmpty(t, rooms)
	for _, r := range rooms {
		assert.GreaterOrEqual(t, r.MaxGuests, 4)
	}
}

func TestRoomCatalog_SearchCombinaFiltros(t *testing.T) {
	catalog := memory.NewRoomCatalog()

	rooms, err := catalog.Search(repository.RoomSearchQuery{
		Location: "resort",
		Guests:   4,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Family Room", rooms[0].Title)
}
