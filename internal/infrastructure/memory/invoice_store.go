package memory

import (
	"sync"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
)

// InvoiceStore almacén en memoria de facturas. Implementa
// repository.InvoiceRepository. Los totales llegan ya derivados desde el caso
// de uso (billing.CalculateTotals); el almacén solo sella id y timestamps.
type InvoiceStore struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Invoice
	order []string
	now   Clock
	newID IDGenerator
}

// NewInvoiceStore construye el almacén.
func NewInvoiceStore(now Clock, newID IDGenerator) *InvoiceStore {
	return &InvoiceStore{
		byID:  make(map[string]*entity.Invoice),
		now:   now,
		newID: newID,
	}
}

// List devuelve todas las facturas en orden de inserción.
func (s *InvoiceStore) List() ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si el id no existe.
func (s *InvoiceStore) GetByID(id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id], nil
}

// Create sella id y timestamps y agrega el registro.
func (s *InvoiceStore) Create(invoice *entity.Invoice) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	invoice.ID = s.newID()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	s.byID[invoice.ID] = invoice
	s.order = append(s.order, invoice.ID)
	return invoice, nil
}

// Update conserva id y createdAt, refresca updatedAt. (nil, nil) si no existe.
func (s *InvoiceStore) Update(id string, invoice *entity.Invoice) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	invoice.ID = existing.ID
	invoice.CreatedAt = existing.CreatedAt
	invoice.UpdatedAt = s.now()
	s.byID[id] = invoice
	return invoice, nil
}

// Delete elimina el registro si existe y devuelve si hubo eliminación.
func (s *InvoiceStore) Delete(id string) (bool, error) {
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
