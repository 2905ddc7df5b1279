package memory

import (
	"sync"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
)

// CustomerStore almacén en memoria de clientes. Implementa repository.CustomerRepository.
type CustomerStore struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Customer
	order []string // ids en orden de inserción
	now   Clock
	newID IDGenerator
}

// NewCustomerStore construye el almacén.
func NewCustomerStore(now Clock, newID IDGenerator) *CustomerStore {
	return &CustomerStore{
		byID:  make(map[string]*entity.Customer),
		now:   now,
		newID: newID,
	}
}

// List devuelve todos los clientes en orden de inserción.
func (s *CustomerStore) List() ([]*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (s *CustomerStore) GetByID(id string) (*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id], nil
}

// Create sella id y timestamps (createdAt = updatedAt) y agrega el registro.
func (s *CustomerStore) Create(customer *entity.Customer) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	customer.ID = s.newID()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	s.byID[customer.ID] = customer
	s.order = append(s.order, customer.ID)
	return customer, nil
}

// Update reemplaza el registro ya fusionado por el caso de uso. Conserva id y
// createdAt del almacenado y refresca updatedAt. (nil, nil) si el id no existe.
func (s *CustomerStore) Update(id string, customer *entity.Customer) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = s.now()
	s.byID[id] = customer
	return customer, nil
}

// Delete elimina el registro si existe y devuelve si hubo eliminación.
func (s *CustomerStore) Delete(id string) (bool, error) {
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
