package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Invoice.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceItem línea de factura. Total viene del llamador: quantity × price
// no se recalcula por línea (ver billing.CalculateTotals).
type InvoiceItem struct {
	ServiceID   string
	ServiceName string // copia desnormalizada para mostrar
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// Invoice representa la cabecera de una factura del hotel.
// Subtotal y Total son derivados: los calcula billing.CalculateTotals, nunca el llamador.
type Invoice struct {
	ID            string
	CustomerID    string
	CustomerName  string // copia desnormalizada para mostrar
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string // pending, paid, cancelled
	PaymentMethod string // opcional
	Notes         string // opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
