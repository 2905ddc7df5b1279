package usecase

import (
	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios de la consola.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// validateUser valida los campos presentes; con requireAll exige los de creación.
func validateUser(in dto.UpdateUserRequest, requireAll bool) error {
	if requireAll {
		if in.Username == nil || *in.Username == "" {
			return domain.Invalid("username", "es requerido")
		}
		if in.Email == nil || *in.Email == "" {
			return domain.Invalid("email", "es requerido")
		}
		if in.Role == nil || *in.Role == "" {
			return domain.Invalid("role", "es requerido")
		}
		if in.Status == nil || *in.Status == "" {
			return domain.Invalid("status", "es requerido")
		}
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return err
		}
	}
	if in.Role != nil {
		if err := validateEnum("role", *in.Role, entity.RoleAdmin, entity.RoleUser); err != nil {
			return err
		}
	}
	if in.Status != nil {
		if err := validateEnum("status", *in.Status,
			entity.UserStatusActive, entity.UserStatusInactive); err != nil {
			return err
		}
	}
	return nil
}

// Create valida todos los campos y crea el usuario.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	all := dto.UpdateUserRequest{
		Username: &in.Username,
		Email:    &in.Email,
		Role:     &in.Role,
		Status:   &in.Status,
	}
	if err := validateUser(all, true); err != nil {
		return nil, err
	}
	user, err := uc.repo.Create(&entity.User{
		Username: in.Username,
		Email:    in.Email,
		Role:     in.Role,
		Status:   in.Status,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario; ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios en orden de inserción.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update fusiona los campos presentes sobre el registro existente.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validateUser(in, false); err != nil {
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
	if in.Username != nil {
		merged.Username = *in.Username
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.Role != nil {
		merged.Role = *in.Role
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
	return toUserResponse(updated), nil
}

// Delete elimina el usuario; ErrNotFound si no existía.
func (uc *UserUseCase) Delete(id string) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
