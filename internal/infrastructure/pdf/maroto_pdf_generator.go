// Package pdf implementa la generación del reporte de gastos de caja menor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social  │  Fecha de generación               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total aprobado / Pendientes / Saldo en custodias  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Empleado | Descripción | Estado | Monto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de soporte interno                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appreport "github.com/jhoicas/CajaMenor-api/internal/application/report"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.ExpenseReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateExpenseReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateExpenseReport(_ context.Context, data *appreport.ExpenseReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Gastos de Caja Menor", true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de gastos
	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(data.Expenses) {
		m.AddRows(r)
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y fecha de generación (der).
func headerRow(data *appreport.ExpenseReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Gastos de Caja Menor", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("GENERADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// summaryRow: KPIs del período en una sola banda.
func summaryRow(data *appreport.ExpenseReportData) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center,
			}),
		)
	}
	return row.New(16).Add(
		kpi("TOTAL APROBADO", "$"+formatMoney(data.ApprovedTotal.StringFixed(0))),
		kpi("GASTOS PENDIENTES", fmt.Sprintf("%d", data.PendingCount)),
		kpi("SALDO EN CUSTODIAS", "$"+formatMoney(data.CustodyTotal.StringFixed(0))),
	)
}

// tableHeaderRow: cabecera de la tabla de gastos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Empleado", 3, align.Left),
		h("Descripción", 4, align.Left),
		h("Estado", 1, align.Center),
		h("Monto", 2, align.Right),
	)
}

// tableDetailRows: una fila por gasto.
func tableDetailRows(expenses []*repository.ExpenseWithEmployee) []core.Row {
	result := make([]core.Row, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				e.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				e.EmployeeName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				e.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				statusLabel(e.Status),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(e.Amount.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de uso interno.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento generado automáticamente por el sistema de caja menor. "+
				"Uso interno: soporte para conciliación y arqueo de caja.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case "APPROVED":
		return "Aprob."
	case "REJECTED":
		return "Rech."
	default:
		return "Pend."
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
