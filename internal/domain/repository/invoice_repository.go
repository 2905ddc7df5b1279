package repository

import "github.com/jhoicas/hotel-admin-api/internal/domain/entity"

// InvoiceRepository define el puerto de almacenamiento para Invoice.
type InvoiceRepository interface {
	List() ([]*entity.Invoice, error)
	GetByID(id string) (*entity.Invoice, error)
	Create(invoice *entity.Invoice) (*entity.Invoice, error)
	Update(id string, invoice *entity.Invoice) (*entity.Invoice, error)
	Delete(id string) (bool, error)
}
