// Package billing contiene la aritmética de facturación del hotel.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
)

// Totals subtotal y total derivados de una factura.
type Totals struct {
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals deriva los totales de la factura: subtotal = Σ item.Total,
// total = subtotal + tax. Función pura; no valida que cada item.Total sea
// quantity × price (esa consistencia, si se quiere, la impone el llamador).
func CalculateTotals(items []entity.InvoiceItem, tax decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	return Totals{
		Subtotal: subtotal,
		Total:    subtotal.Add(tax),
	}
}
