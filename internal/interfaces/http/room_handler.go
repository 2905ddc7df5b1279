package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/application/usecase"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// RoomHandler catálogo público de habitaciones (sin token, solo lectura).
type RoomHandler struct {
	uc *usecase.RoomUseCase
}

// NewRoomHandler construye el handler.
func NewRoomHandler(uc *usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// Search GET /api/rooms/search?query=&location=&priceRange=min-max&guests=
func (h *RoomHandler) Search(c *fiber.Ctx) error {
	q := repository.RoomSearchQuery{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		Guests:   c.QueryInt("guests", 0),
	}
	// priceRange malformado se ignora, igual que hacía la web.
	if pr := c.Query("priceRange"); pr != "" {
		if parts := strings.SplitN(pr, "-", 2); len(parts) == 2 {
			min, errMin := strconv.ParseFloat(parts[0], 64)
			max, errMax := strconv.ParseFloat(parts[1], 64)
			if errMin == nil && errMax == nil {
				q.HasPriceRange = true
				q.PriceMin = min
				q.PriceMax = max
			}
		}
	}
	out, err := h.uc.Search(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/rooms/:id
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
