package usecase

import (
	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// RoomUseCase consultas del catálogo público de habitaciones (solo lectura).
type RoomUseCase struct {
	repo repository.RoomRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(repo repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{repo: repo}
}

// Search filtra el catálogo con los criterios del buscador de la web.
func (uc *RoomUseCase) Search(q repository.RoomSearchQuery) ([]dto.RoomResponse, error) {
	rooms, err := uc.repo.Search(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, *toRoomResponse(r))
	}
	return out, nil
}

// GetByID devuelve el detalle de una habitación; ErrNotFound si no existe.
func (uc *RoomUseCase) GetByID(id int) (*dto.RoomResponse, error) {
	room, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	return toRoomResponse(room), nil
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:              r.ID,
		Title:           r.Title,
		Price:           r.Price,
		Image:           r.Image,
		Description:     r.Description,
		FullDescription: r.FullDescription,
		Location:        r.Location,
		Amenities:       r.Amenities,
		Size:            r.Size,
		MaxGuests:       r.MaxGuests,
	}
}
