package memory

import (
	"sync"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
)

// UserStore almacén en memoria de usuarios. Implementa repository.UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
	now   Clock
	newID IDGenerator
}

// NewUserStore construye el almacén.
func NewUserStore(now Clock, newID IDGenerator) *UserStore {
	return &UserStore{
		byID:  make(map[string]*entity.User),
		now:   now,
		newID: newID,
	}
}

// List devuelve todos los usuarios en orden de inserción.
func (s *UserStore) List() ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (s *UserStore) GetByID(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id], nil
}

// Create sella id y timestamps y agrega el registro.
func (s *UserStore) Create(user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	user.ID = s.newID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.byID[user.ID] = user
	s.order = append(s.order, user.ID)
	return user, nil
}

// Update conserva id y createdAt, refresca updatedAt. (nil, nil) si no existe.
func (s *UserStore) Update(id string, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = s.now()
	s.byID[id] = user
	return user, nil
}

// Delete elimina el registro si existe y devuelve si hubo eliminación.
func (s *UserStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
