package usecase

import (
	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para servicios del hotel.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// validateService valida los campos presentes; con requireAll exige los de
// creación. ImageURL es opcional siempre.
func validateService(in dto.UpdateServiceRequest, requireAll bool) error {
	if requireAll {
		if in.Name == nil || *in.Name == "" {
			return domain.Invalid("name", "es requerido")
		}
		if in.Description == nil || *in.Description == "" {
			return domain.Invalid("description", "es requerido")
		}
		if in.Price == nil {
			return domain.Invalid("price", "es requerido")
		}
		if in.Category == nil || *in.Category == "" {
			return domain.Invalid("category", "es requerido")
		}
		if in.Status == nil || *in.Status == "" {
			return domain.Invalid("status", "es requerido")
		}
	}
	if in.Price != nil && in.Price.IsNegative() {
		return domain.Invalid("price", "no puede ser negativo")
	}
	if in.Status != nil {
		if err := validateEnum("status", *in.Status,
			entity.ServiceStatusAvailable, entity.ServiceStatusUnavailable); err != nil {
			return err
		}
	}
	return nil
}

// Create valida todos los campos y crea el servicio.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	all := dto.UpdateServiceRequest{
		Name:        &in.Name,
		Description: &in.Description,
		Price:       in.Price,
		Category:    &in.Category,
		Status:      &in.Status,
	}
	if err := validateService(all, true); err != nil {
		return nil, err
	}
	service, err := uc.repo.Create(&entity.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Status:      in.Status,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio; ErrNotFound si no existe.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(service), nil
}

// List lista todos los servicios en orden de inserción.
func (uc *ServiceUseCase) List() ([]dto.ServiceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// Update fusiona los campos presentes sobre el registro existente.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := validateService(in, false); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	merged := *existing
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.Price != nil {
		merged.Price = *in.Price
	}
	if in.Category != nil {
		merged.Category = *in.Category
	}
	if in.Status != nil {
		merged.Status = *in.Status
	}
	if in.ImageURL != nil {
		merged.ImageURL = *in.ImageURL
	}
	updated, err := uc.repo.Update(id, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(updated), nil
}

// Delete elimina el servicio; ErrNotFound si no existía.
func (uc *ServiceUseCase) Delete(id string) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Category:    s.Category,
		Status:      s.Status,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
