package repository

import "github.com/jhoicas/hotel-admin-api/internal/domain/entity"

// ServiceRepository define el puerto de almacenamiento para Service.
type ServiceRepository interface {
	List() ([]*entity.Service, error)
	GetByID(id string) (*entity.Service, error)
	Create(service *entity.Service) (*entity.Service, error)
	Update(id string, service *entity.Service) (*entity.Service, error)
	Delete(id string) (bool, error)
}
