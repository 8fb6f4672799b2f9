// Package pdf renders the printable quote document on an A4 page:
// company header, client block, service types, line-item table, totals,
// observations and commercial conditions.
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/sitec-sas/gestion/internal/finance"
	"github.com/sitec-sas/gestion/internal/model"
	"github.com/sitec-sas/gestion/internal/money"
)

const companyName = "SITEC Soluciones Tecnológicas Integrales SAS"

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// QuoteDocument renders the quote as PDF bytes. The totals printed are
// the frozen values stored on the quote; nothing is recomputed here
// except the per-line display amounts.
func QuoteDocument(q model.Quote, client model.Client) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+q.Number, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(servicesRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(q.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(q))

	m.AddRows(line.NewRow(3))
	for _, r := range textBlockRows("OBSERVACIONES", q.Observations) {
		m.AddRows(r)
	}
	for _, r := range textBlockRows("CONDICIONES COMERCIALES", q.CommercialConditions) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(bankRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(q model.Quote) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: 901806525-3", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(q.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+q.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clientRow(client model.Client) core.Row {
	contact := client.ContactPerson
	if contact == "" {
		contact = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT: %s   |   Contacto: %s   |   Tel: %s",
				client.NIT, contact, client.Phone,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func servicesRow(q model.Quote) core.Row {
	labels := make([]string, len(q.ServiceTypes))
	for i, s := range q.ServiceTypes {
		labels[i] = string(s)
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Servicios: "+strings.Join(labels, ", "), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func tableItemRows(items []model.QuoteItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatCOP(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatCOP(finance.LineTotal(it)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(q model.Quote) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal ítems:", 1),
			label("Mano de obra:", 6),
			label("Subtotal general:", 11),
			label("IVA (19%):", 16),
			grandLabel("TOTAL:", 24),
		),
		col.New(3).Add(
			value(money.FormatCOP(q.SubtotalItems), 1),
			value(money.FormatCOP(q.LaborCost), 6),
			value(money.FormatCOP(q.SubtotalGeneral), 11),
			value(money.FormatCOP(q.IVA), 16),
			grandValue(money.FormatCOP(q.Total), 24),
		),
		col.New(2),
	)
}

func textBlockRows(title, body string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, ln := range strings.Split(body, "\n") {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(ln, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	return rows
}

func bankRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(model.BankInfo, props.Text{
				Size: 7, Align: align.Center, Top: 2, Color: colorGray,
			}),
		),
	)
}
