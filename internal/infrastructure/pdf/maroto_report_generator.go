// Package pdf implementa la versión imprimible de los reportes de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del reporte  │  Período + Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES del período (entradas / salidas / neto)            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN por tipo: ranking, movimientos, estado del stock   │
//	│  o proyección de consumo                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                              │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/stock-control/internal/application/reporting"
	"github.com/tu-usuario/stock-control/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 130, Blue: 60}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorAmber   = &props.Color{Red: 190, Green: 125, Blue: 0}
)

// es inserta separadores de miles al estilo local ("1.000.000").
var es = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reporting.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ reporting.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, r *report.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(kindTitle(r.Kind), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(&r.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	switch r.Kind {
	case report.KindEntries, report.KindExits:
		addMovementSection(m, r)
	case report.KindGeneral:
		addGeneralSection(m, r)
	case report.KindConsumption:
		addConsumptionSection(m, r)
	}

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

// headerRow: título del reporte (izq) y período + fecha de emisión (der).
func headerRow(r *report.Report) core.Row {
	filtro := "Todos los productos"
	if n := len(r.ProductIDs); n > 0 {
		filtro = es.Sprintf("Filtrado: %d producto(s)", n)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(kindTitle(r.Kind), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filtro, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel(r.Period), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// totalsRow: entradas, salidas y neto del período en tres columnas.
func totalsRow(t *report.Totals) core.Row {
	block := func(label, qty, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(qty, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 6,
			}),
			text.New(value, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 13,
			}),
		)
	}
	return row.New(18).Add(
		block("ENTRADAS",
			es.Sprintf("%v uds", number.Decimal(t.EntryQuantity)),
			"$"+money(t.EntryValue), colorGreen),
		block("SALIDAS",
			es.Sprintf("%v uds", number.Decimal(t.ExitQuantity)),
			"$"+money(t.ExitValue), colorRed),
		block("MOVIMIENTO NETO",
			es.Sprintf("%v uds", number.Decimal(t.NetQuantity)),
			"$"+money(t.NetValue), colorPrimary),
	)
}

// addMovementSection: ranking por producto + listado de movimientos.
func addMovementSection(m core.Maroto, r *report.Report) {
	m.AddRows(sectionTitle("Ranking por producto"))
	m.AddRows(row.New(7).Add(
		th("#", 1, align.Center),
		th("Producto", 5, align.Left),
		th("Cantidad", 2, align.Right),
		th("Movs.", 1, align.Center),
		th("Valor", 3, align.Right),
	))
	for i, pt := range r.Ranking {
		m.AddRows(row.New(6).Add(
			td(fmt.Sprintf("%d", i+1), 1, align.Center),
			td(pt.ProductName, 5, align.Left),
			td(es.Sprintf("%v %s", number.Decimal(pt.Quantity), pt.Unit), 2, align.Right),
			td(fmt.Sprintf("%d", pt.MovementCount), 1, align.Center),
			td("$"+money(pt.Value), 3, align.Right),
		))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("Movimientos del período"))
	m.AddRows(row.New(7).Add(
		th("Fecha", 2, align.Left),
		th("Producto", 4, align.Left),
		th("Cantidad", 2, align.Right),
		th("Valor", 2, align.Right),
		th("Nota", 2, align.Left),
	))
	for _, ml := range r.Movements {
		name := ml.ProductName
		if ml.ProductMissing {
			name = reporting.MissingProductLabel
		}
		m.AddRows(row.New(6).Add(
			td(ml.CreatedAt.Format("02/01/2006"), 2, align.Left),
			td(name, 4, align.Left),
			td(es.Sprintf("%v %s", number.Decimal(ml.Quantity), ml.Unit), 2, align.Right),
			td("$"+money(ml.Value), 2, align.Right),
			td(ml.Note, 2, align.Left),
		))
	}
}

// addGeneralSection: estado actual del stock + desglose por categoría.
func addGeneralSection(m core.Maroto, r *report.Report) {
	if s := r.Stock; s != nil {
		m.AddRows(sectionTitle("Estado actual del stock"))
		m.AddRows(row.New(14).Add(
			col.New(12).Add(
				text.New(es.Sprintf(
					"Productos: %d   |   Valor total: $%s   |   Precio promedio: $%s",
					s.ProductCount, money(s.TotalStockValue), money(s.AveragePrice),
				), props.Text{Size: 9, Top: 1}),
				text.New(es.Sprintf(
					"Bajo stock mínimo: %d   |   Agotados: %d",
					s.LowStockCount, s.OutOfStockCount,
				), props.Text{Size: 9, Top: 7, Color: colorGray}),
			),
		))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("Desglose por categoría"))
	m.AddRows(row.New(7).Add(
		th("Categoría", 5, align.Left),
		th("Productos", 2, align.Center),
		th("Unidades", 2, align.Right),
		th("Valor", 3, align.Right),
	))
	for _, c := range r.ByCategory {
		m.AddRows(row.New(6).Add(
			td(c.CategoryName, 5, align.Left),
			td(fmt.Sprintf("%d", c.ProductCount), 2, align.Center),
			td(es.Sprintf("%v", number.Decimal(c.TotalQuantity)), 2, align.Right),
			td("$"+money(c.TotalValue), 3, align.Right),
		))
	}
}

// addConsumptionSection: proyección de consumo por producto + resumen.
func addConsumptionSection(m core.Maroto, r *report.Report) {
	m.AddRows(sectionTitle("Proyección de consumo"))
	m.AddRows(row.New(7).Add(
		th("Producto", 4, align.Left),
		th("Consumido", 2, align.Right),
		th("Prom./día", 2, align.Right),
		th("Proy. mensual", 2, align.Right),
		th("Se agota en", 2, align.Center),
	))
	for _, e := range r.Consumption {
		agota := "—"
		if e.DaysUntilEmpty != nil {
			agota = es.Sprintf("%d días", *e.DaysUntilEmpty)
		}
		m.AddRows(row.New(6).Add(
			td(e.ProductName, 4, align.Left),
			td(es.Sprintf("%v %s", number.Decimal(e.TotalConsumed), e.Unit), 2, align.Right),
			td(e.DailyAverage.StringFixed(2), 2, align.Right),
			td(e.MonthlyProjection.StringFixed(0), 2, align.Right),
			col.New(2).Add(text.New(agota, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: urgencyColor(e.Urgency),
			})),
		))
	}

	if s := r.ConsumptionSummary; s != nil {
		m.AddRows(line.NewRow(2))
		m.AddRows(row.New(10).Add(
			col.New(12).Add(
				text.New(es.Sprintf(
					"Críticos: %d   |   En alerta: %d   |   Sin riesgo: %d   |   Costo mensual proyectado: $%s",
					s.CriticalCount, s.WarningCount, s.OKCount, money(s.TotalMonthlyCost),
				), props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary}),
			),
		))
	}
}

// footerRow: leyenda de generación.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente a partir del historial de movimientos. "+
				"Los valores usan el precio actual de cada producto.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func th(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func td(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// money formatea un decimal sin centavos con separador de miles local.
func money(d decimal.Decimal) string {
	return es.Sprintf("%v", number.Decimal(d.Round(0).IntPart()))
}

func urgencyColor(u string) *props.Color {
	switch u {
	case report.UrgencyCritical:
		return colorRed
	case report.UrgencyWarning:
		return colorAmber
	}
	return colorGreen
}

func kindTitle(k report.Kind) string {
	switch k {
	case report.KindEntries:
		return "Reporte de Entradas"
	case report.KindExits:
		return "Reporte de Salidas"
	case report.KindConsumption:
		return "Reporte de Consumo"
	}
	return "Reporte General"
}

func periodLabel(p report.Period) string {
	switch p {
	case report.PeriodAll:
		return "Historial completo"
	}
	return fmt.Sprintf("Últimos %d días", p.Days())
}
