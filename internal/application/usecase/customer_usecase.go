package usecase

import (
	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes del hotel.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// validateCustomer valida los campos presentes (punteros no nulos); con
// requireAll exige además todos los obligatorios de creación.
func validateCustomer(in dto.UpdateCustomerRequest, requireAll bool) error {
	if requireAll {
		fields := map[string]*string{
			"name":    in.Name,
			"email":   in.Email,
			"phone":   in.Phone,
			"address": in.Address,
			"status":  in.Status,
		}
		for _, field := range []string{"name", "email", "phone", "address", "status"} {
			v := fields[field]
			if v == nil {
				return domain.Invalid(field, "es requerido")
			}
			if err := requireField(field, *v); err != nil {
				return err
			}
		}
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return err
		}
	}
	if in.Phone != nil {
		if err := validatePhone(*in.Phone); err != nil {
			return err
		}
	}
	if in.Status != nil {
		if err := validateEnum("status", *in.Status,
			entity.CustomerStatusActive, entity.CustomerStatusInactive); err != nil {
			return err
		}
	}
	return nil
}

// Create valida todos los campos y crea el cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	all := dto.UpdateCustomerRequest{
		Name:    &in.Name,
		Email:   &in.Email,
		Phone:   &in.Phone,
		Address: &in.Address,
		Status:  &in.Status,
	}
	if err := validateCustomer(all, true); err != nil {
		return nil, err
	}
	customer, err := uc.repo.Create(&entity.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Status:  in.Status,
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes en orden de inserción.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update fusiona los campos presentes sobre el registro existente.
// Los campos omitidos no se validan ni se tocan.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(in, false); err != nil {
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
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.Phone != nil {
		merged.Phone = *in.Phone
	}
	if in.Address != nil {
		merged.Address = *in.Address
	}
	if in.Status != nil {
		merged.Status = *in.Status
	}
	updated, err := uc.repo.Update(id, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(updated), nil
}

// Delete elimina el cliente; ErrNotFound si no existía.
func (uc *CustomerUseCase) Delete(id string) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
