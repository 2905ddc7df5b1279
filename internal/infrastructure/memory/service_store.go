package memory

import (
	"sync"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
)

// ServiceStore almacén en memoria de servicios del hotel. Implementa
// repository.ServiceRepository.
type ServiceStore struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Service
	order []string
	now   Clock
	newID IDGenerator
}

// NewServiceStore construye el almacén.
func NewServiceStore(now Clock, newID IDGenerator) *ServiceStore {
	return &ServiceStore{
		byID:  make(map[string]*entity.Service),
		now:   now,
		newID: newID,
	}
}

// List devuelve todos los servicios en orden de inserción.
func (s *ServiceStore) List() ([]*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Service, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (s *ServiceStore) GetByID(id string) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id], nil
}

// Create sella id y timestamps y agrega el registro.
func (s *ServiceStore) Create(service *entity.Service) (*entity.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	service.ID = s.newID()
	service.CreatedAt = now
	service.UpdatedAt = now
	s.byID[service.ID] = service
	s.order = append(s.order, service.ID)
	return service, nil
}

// Update conserva id y createdAt, refresca updatedAt. (nil, nil) si no existe.
func (s *ServiceStore) Update(id string, service *entity.Service) (*entity.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt
	service.UpdatedAt = s.now()
	s.byID[id] = service
	return service, nil
}

// Delete elimina el registro si existe y devuelve si hubo eliminación.
func (s *ServiceStore) Delete(id string) (bool, error) {
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
