package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// Niveles de urgencia según los días proyectados hasta agotar stock.
const (
	UrgencyCritical = "critical" // se agota en 7 días o menos
	UrgencyWarning  = "warning"  // se agota en 30 días o menos
	UrgencyOK       = "ok"       // más de 30 días, o sin proyección
)

var thirty = decimal.NewFromInt(30)

// ConsumptionEntry proyección de consumo de un producto con salidas en el
// período. Derivado y transitorio: se recalcula en cada reporte.
type ConsumptionEntry struct {
	ProductID         string
	ProductName       string
	Unit              string
	CategoryID        string
	CategoryName      string
	CategoryColor     string
	TotalConsumed     int64
	MovementCount     int
	DailyAverage      decimal.Decimal
	MonthlyProjection decimal.Decimal
	DaysUntilEmpty    *int64 // nil cuando DailyAverage == 0 (sin proyección, no infinito)
	CostProjection    decimal.Decimal
	Urgency           string
}

// ProjectConsumption calcula, para cada producto con al menos una salida en
// el conjunto filtrado, su consumo total, promedio diario, proyección
// mensual, días hasta agotarse y urgencia. Productos sin salidas se omiten
// por completo. Resultado ordenado descendente por consumo total.
//
// Ventana de actividad:
//   - período fijo (7/30/90): activeDays = días del período, para todos.
//   - PeriodAll: activeDays = max(1, ceil(última salida - primera salida))
//     por producto, usando solo las salidas de ESE producto. Un producto con
//     una única salida queda con activeDays = 1; eso infla el promedio a
//     todo el consumo en un día — aproximación conocida y aceptada.
//
// DaysUntilEmpty usa el stock ACTUAL del producto, no el del inicio del
// período.
func ProjectConsumption(exitMovements []entity.Movement, products []entity.Product, categories []entity.Category, p Period) []ConsumptionEntry {
	byProduct := productIndex(products)
	categoryByID := make(map[string]entity.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	type window struct {
		total int64
		count int
		first int64 // unix del primer exit del producto en el período
		last  int64
	}
	windows := make(map[string]*window, len(products))
	order := make([]string, 0, len(products))

	for _, m := range exitMovements {
		if m.Type != entity.MovementTypeExit {
			continue
		}
		if _, ok := byProduct[m.ProductID]; !ok {
			// Producto eliminado del catálogo: fuera del análisis de consumo.
			continue
		}
		w, ok := windows[m.ProductID]
		if !ok {
			ts := m.CreatedAt.Unix()
			windows[m.ProductID] = &window{total: m.Quantity, count: 1, first: ts, last: ts}
			order = append(order, m.ProductID)
			continue
		}
		w.total += m.Quantity
		w.count++
		if ts := m.CreatedAt.Unix(); ts < w.first {
			w.first = ts
		} else if ts > w.last {
			w.last = ts
		}
	}

	entries := make([]ConsumptionEntry, 0, len(order))
	for _, productID := range order {
		w := windows[productID]
		product := byProduct[productID]

		activeDays := int64(p.Days())
		if p == PeriodAll {
			activeDays = spanDays(w.first, w.last)
		}
		if activeDays < 1 {
			activeDays = 1
		}

		dailyAverage := decimal.NewFromInt(w.total).Div(decimal.NewFromInt(activeDays))
		monthlyProjection := dailyAverage.Mul(thirty)

		var daysUntilEmpty *int64
		if dailyAverage.GreaterThan(decimal.Zero) {
			d := decimal.NewFromInt(product.Quantity).Div(dailyAverage).Round(0).IntPart()
			daysUntilEmpty = &d
		}

		entry := ConsumptionEntry{
			ProductID:         productID,
			ProductName:       product.Name,
			Unit:              product.Unit,
			CategoryID:        product.CategoryID,
			TotalConsumed:     w.total,
			MovementCount:     w.count,
			DailyAverage:      dailyAverage,
			MonthlyProjection: monthlyProjection,
			DaysUntilEmpty:    daysUntilEmpty,
			CostProjection:    monthlyProjection.Mul(product.Price),
			Urgency:           urgency(daysUntilEmpty),
		}
		if c, ok := categoryByID[product.CategoryID]; ok {
			entry.CategoryName = c.Name
			entry.CategoryColor = c.Color
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalConsumed > entries[j].TotalConsumed
	})
	return entries
}

// spanDays devuelve ceil(last-first) en días a partir de timestamps unix.
func spanDays(first, last int64) int64 {
	const daySeconds = 24 * 60 * 60
	diff := last - first
	if diff <= 0 {
		return 0
	}
	return (diff + daySeconds - 1) / daySeconds
}

// urgency clasifica según los umbrales: ≤7 crítico, ≤30 advertencia, resto ok.
// Sin proyección (days == nil) nunca es urgente.
func urgency(daysUntilEmpty *int64) string {
	if daysUntilEmpty == nil {
		return UrgencyOK
	}
	switch {
	case *daysUntilEmpty <= 7:
		return UrgencyCritical
	case *daysUntilEmpty <= 30:
		return UrgencyWarning
	}
	return UrgencyOK
}
