// Package billing expone la generación de la representación en PDF de una
// factura del hotel para imprimir o enviar al huésped.
package billing

import (
	"context"

	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto para el render del documento. customer puede ser
// nil cuando el cliente referenciado ya no existe; el render usa entonces la
// copia desnormalizada de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer, hotelName string) ([]byte, error)
}

// PDFUseCase arma los datos de la factura y delega el render al generador.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	generator InvoicePDFGenerator
	hotelName string
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	generator InvoicePDFGenerator,
	hotelName string,
) *PDFUseCase {
	return &PDFUseCase{
		invoices:  invoices,
		customers: customers,
		generator: generator,
		hotelName: hotelName,
	}
}

// Generate devuelve los bytes del PDF de la factura; ErrNotFound si no existe.
func (uc *PDFUseCase) Generate(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	// El cliente puede haber sido eliminado después de facturar; la referencia
	// no está garantizada por el almacén.
	customer, err := uc.customers.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, customer, uc.hotelName)
}
