// Package pdf genera la representación imprimible de una factura del hotel
// (la que se entrega al huésped en el check-out).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del hotel  │  N° Factura + Fecha + Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HUÉSPED: Nombre + contacto                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Servicio | P.Unit | Total                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL A PAGAR                │
//	│  FOOTER: método de pago + notas                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. customer puede ser
// nil; en ese caso se usa la copia desnormalizada de la factura.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	hotelName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.ID, true).
		WithAuthor(hotelName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, hotelName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(guestRow(invoice, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range invoice.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(invoice)...)
	m.AddRows(footerRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del hotel (izq) y número, fecha y estado (der).
func headerRow(invoice *entity.Invoice, hotelName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(hotelName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Factura de servicios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Factura: "+invoice.ID, props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+invoice.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 6,
			}),
			text.New("Estado: "+invoice.Status, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// guestRow: datos del huésped. Si el cliente ya no existe en el almacén se
// imprime solo el nombre desnormalizado de la factura.
func guestRow(invoice *entity.Invoice, customer *entity.Customer) core.Row {
	name := invoice.CustomerName
	contact := ""
	if customer != nil {
		name = customer.Name
		contact = customer.Email + " · " + customer.Phone
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Huésped: "+name, props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}),
			text.New(contact, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		text.NewCol(1, "Cant", header),
		text.NewCol(6, "Servicio", header),
		text.NewCol(2, "P. Unit", headerRight),
		text.NewCol(3, "Total", headerRight),
	)
}

func itemRow(item entity.InvoiceItem) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	return row.New(6).Add(
		text.NewCol(1, strconv.Itoa(item.Quantity), cell),
		text.NewCol(6, item.ServiceName, cell),
		text.NewCol(2, "$"+item.Price.StringFixed(2), cellRight),
		text.NewCol(3, "$"+item.Total.StringFixed(2), cellRight),
	)
}

func totalsRows(invoice *entity.Invoice) []core.Row {
	label := props.Text{Size: 8, Align: align.Right, Top: 1}
	value := props.Text{Size: 8, Align: align.Right, Top: 1}
	totalLabel := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 1, Color: colorPrimary}
	return []core.Row{
		row.New(6).Add(
			text.NewCol(9, "Subtotal", label),
			text.NewCol(3, "$"+invoice.Subtotal.StringFixed(2), value),
		),
		row.New(6).Add(
			text.NewCol(9, "Impuesto", label),
			text.NewCol(3, "$"+invoice.Tax.StringFixed(2), value),
		),
		row.New(8).Add(
			text.NewCol(9, "TOTAL A PAGAR", totalLabel),
			text.NewCol(3, "$"+invoice.Total.StringFixed(2), totalLabel),
		),
	}
}

func footerRows(invoice *entity.Invoice) []core.Row {
	rows := []core.Row{line.NewRow(3)}
	if invoice.PaymentMethod != "" {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, "Método de pago: "+invoice.PaymentMethod,
				props.Text{Size: 8, Color: colorGray}),
		))
	}
	if invoice.Notes != "" {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, "Notas: "+invoice.Notes,
				props.Text{Size: 8, Color: colorGray}),
		))
	}
	return rows
}
