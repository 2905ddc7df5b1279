package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/domain/billing"
	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD para facturas. Subtotal y total siempre se
// derivan con billing.CalculateTotals antes de tocar el almacén; el llamador
// nunca los fija directamente.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func validateInvoiceItems(items []dto.InvoiceItemRequest) error {
	if len(items) == 0 {
		return domain.Invalid("items", "debe incluir al menos una línea")
	}
	for _, item := range items {
		if item.ServiceID == "" {
			return domain.Invalid("items.serviceId", "es requerido")
		}
		if item.ServiceName == "" {
			return domain.Invalid("items.serviceName", "es requerido")
		}
		if item.Quantity <= 0 {
			return domain.Invalid("items.quantity", "debe ser un entero positivo")
		}
		if item.Price.IsNegative() {
			return domain.Invalid("items.price", "no puede ser negativo")
		}
	}
	return nil
}

func validateInvoiceStatus(status string) error {
	return validateEnum("status", status,
		entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled)
}

// Create valida la factura, deriva totales y la crea. Tax ausente cuenta como 0.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := requireField("customerId", in.CustomerID); err != nil {
		return nil, err
	}
	if err := requireField("customerName", in.CustomerName); err != nil {
		return nil, err
	}
	if err := validateInvoiceItems(in.Items); err != nil {
		return nil, err
	}
	if err := requireField("status", in.Status); err != nil {
		return nil, err
	}
	if err := validateInvoiceStatus(in.Status); err != nil {
		return nil, err
	}

	tax := decimal.Zero
	if in.Tax != nil {
		tax = *in.Tax
	}
	items := toInvoiceItems(in.Items)
	totals := billing.CalculateTotals(items, tax)

	invoice, err := uc.repo.Create(&entity.Invoice{
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           tax,
		Total:         totals.Total,
		Status:        in.Status,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura; ErrNotFound si no existe.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// List lista todas las facturas en orden de inserción.
func (uc *InvoiceUseCase) List() ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

// Update fusiona los campos presentes. Contrato de totales: si la petición
// omite items, se conservan las líneas almacenadas y sus totales; los totales
// se recalculan solo cuando llegan items o tax (tax solo recalcula con las
// líneas ya almacenadas).
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Items != nil {
		if err := validateInvoiceItems(in.Items); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if err := validateInvoiceStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	merged := *existing
	if in.CustomerID != nil {
		merged.CustomerID = *in.CustomerID
	}
	if in.CustomerName != nil {
		merged.CustomerName = *in.CustomerName
	}
	if in.Items != nil {
		merged.Items = toInvoiceItems(in.Items)
	}
	if in.Tax != nil {
		merged.Tax = *in.Tax
	}
	if in.Items != nil || in.Tax != nil {
		totals := billing.CalculateTotals(merged.Items, merged.Tax)
		merged.Subtotal = totals.Subtotal
		merged.Total = totals.Total
	}
	if in.Status != nil {
		merged.Status = *in.Status
	}
	if in.PaymentMethod != nil {
		merged.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		merged.Notes = *in.Notes
	}

	updated, err := uc.repo.Update(id, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(updated), nil
}

// Delete elimina la factura; ErrNotFound si no existía.
func (uc *InvoiceUseCase) Delete(id string) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func toInvoiceItems(in []dto.InvoiceItemRequest) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, len(in))
	for _, item := range in {
		items = append(items, entity.InvoiceItem{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		})
	}
	return items
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        inv.Status,
		PaymentMethod: inv.PaymentMethod,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
