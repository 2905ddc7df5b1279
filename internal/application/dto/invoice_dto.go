package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura tal como la envía la consola.
type InvoiceItemRequest struct {
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// CreateInvoiceRequest entrada para crear una factura. Subtotal y total NO se
// aceptan del llamador: siempre los deriva billing.CalculateTotals.
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customerId"`
	CustomerName  string               `json:"customerName"`
	Items         []InvoiceItemRequest `json:"items"`
	Tax           *decimal.Decimal     `json:"tax"` // ausente = 0
	Status        string               `json:"status"`
	PaymentMethod string               `json:"paymentMethod"`
	Notes         string               `json:"notes"`
}

// UpdateInvoiceRequest actualización parcial. Items nil significa "no tocar
// las líneas": se conservan las almacenadas y sus totales.
type UpdateInvoiceRequest struct {
	CustomerID    *string              `json:"customerId"`
	CustomerName  *string              `json:"customerName"`
	Items         []InvoiceItemRequest `json:"items"`
	Tax           *decimal.Decimal     `json:"tax"`
	Status        *string              `json:"status"`
	PaymentMethod *string              `json:"paymentMethod"`
	Notes         *string              `json:"notes"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CustomerID    string                `json:"customerId"`
	CustomerName  string                `json:"customerName"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Tax           decimal.Decimal       `json:"tax"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	PaymentMethod string                `json:"paymentMethod,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}
