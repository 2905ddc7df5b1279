package repository

import "github.com/jhoicas/hotel-admin-api/internal/domain/entity"

// CustomerRepository define el puerto de almacenamiento para Customer.
// GetByID y Update devuelven (nil, nil) cuando el id no existe.
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(customer *entity.Customer) (*entity.Customer, error)
	Update(id string, customer *entity.Customer) (*entity.Customer, error)
	Delete(id string) (bool, error)
}
