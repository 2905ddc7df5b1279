package repository

import "github.com/jhoicas/hotel-admin-api/internal/domain/entity"

// UserRepository define el puerto de almacenamiento para User.
type UserRepository interface {
	List() ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Create(user *entity.User) (*entity.User, error)
	Update(id string, user *entity.User) (*entity.User, error)
	Delete(id string) (bool, error)
}
