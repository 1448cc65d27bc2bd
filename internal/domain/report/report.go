package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// Tipos de reporte.
const (
	KindEntries     Kind = "entries"     // solo entradas
	KindExits       Kind = "exits"       // solo salidas
	KindGeneral     Kind = "general"     // totales + categorías + estado del stock
	KindConsumption Kind = "consumption" // proyección de consumo
)

// Kind selecciona qué secciones del reporte se calculan.
type Kind string

// Valid indica si k es uno de los tipos de reporte conocidos.
func (k Kind) Valid() bool {
	switch k {
	case KindEntries, KindExits, KindGeneral, KindConsumption:
		return true
	}
	return false
}

// Params parámetros de entrada del armado de un reporte.
// ProductIDs no vacío restringe movimientos a ese subconjunto de productos
// ANTES de agregar y proyectar; el desglose por categoría no se restringe.
type Params struct {
	Kind       Kind
	Period     Period
	ProductIDs []string
	Now        time.Time
}

// MovementLine movimiento anotado con los datos del producto para listados.
// ProductMissing marca movimientos de productos ya eliminados; la capa de
// presentación les pone la etiqueta de "producto eliminado".
type MovementLine struct {
	ID             string
	ProductID      string
	ProductName    string
	Unit           string
	Type           string
	Quantity       int64
	UnitPrice      decimal.Decimal
	Value          decimal.Decimal
	Note           string
	CreatedAt      time.Time
	ProductMissing bool
}

// StockSummary estado actual del catálogo completo (solo reporte general).
type StockSummary struct {
	ProductCount    int
	TotalStockValue decimal.Decimal
	AveragePrice    decimal.Decimal // promedio simple de precios de catálogo
	LowStockCount   int             // quantity <= minStock
	OutOfStockCount int             // quantity == 0
}

// ConsumptionSummary acumulados del reporte de consumo.
type ConsumptionSummary struct {
	CriticalCount    int
	WarningCount     int
	OKCount          int
	TotalMonthlyCost decimal.Decimal // sum(costProjection)
}

// Report resultado de un armado: inmutable, transitorio, descartable.
// Solo las secciones del Kind pedido vienen pobladas.
type Report struct {
	Kind        Kind
	Period      Period
	GeneratedAt time.Time
	ProductIDs  []string // filtro aplicado, vacío = todos

	Totals     Totals
	ByCategory []CategoryBreakdown

	// entries / exits
	Ranking   []ProductTotal
	Movements []MovementLine

	// general
	Stock *StockSummary

	// consumption
	Consumption        []ConsumptionEntry
	ConsumptionSummary *ConsumptionSummary
}

// Assemble filtra por período y subconjunto de productos, agrega, proyecta
// y compone el reporte según el Kind. No muta sus entradas. Con catálogo o
// movimientos vacíos devuelve un reporte bien formado con totales en cero.
// Devuelve domain.ErrInvalidInput si el período o el tipo no son válidos.
func Assemble(params Params, movements []entity.Movement, products []entity.Product, categories []entity.Category) (*Report, error) {
	if !params.Kind.Valid() || !params.Period.Valid() {
		return nil, domain.ErrInvalidInput
	}

	filtered := FilterByPeriod(movements, params.Period, params.Now)
	if len(params.ProductIDs) > 0 {
		filtered = filterByProducts(filtered, params.ProductIDs)
	}

	agg := Aggregate(filtered, products, categories)

	r := &Report{
		Kind:        params.Kind,
		Period:      params.Period,
		GeneratedAt: params.Now,
		ProductIDs:  params.ProductIDs,
		Totals:      agg.Totals,
		ByCategory:  agg.ByCategory,
	}

	switch params.Kind {
	case KindEntries:
		r.Ranking = agg.EntryRanking
		r.Movements = annotate(filtered, products, entity.MovementTypeEntry)
	case KindExits:
		r.Ranking = agg.ExitRanking
		r.Movements = annotate(filtered, products, entity.MovementTypeExit)
	case KindGeneral:
		r.Stock = summarizeStock(products)
	case KindConsumption:
		r.Consumption = ProjectConsumption(filtered, products, categories, params.Period)
		r.ConsumptionSummary = summarizeConsumption(r.Consumption)
	}

	return r, nil
}

// filterByProducts retiene los movimientos cuyo producto está en ids.
func filterByProducts(movements []entity.Movement, ids []string) []entity.Movement {
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	filtered := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if _, ok := allowed[m.ProductID]; ok {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// annotate resuelve nombre y precio del producto para cada movimiento del
// tipo pedido, en el orden original del listado.
func annotate(movements []entity.Movement, products []entity.Product, movementType string) []MovementLine {
	byID := productIndex(products)
	lines := make([]MovementLine, 0, len(movements))
	for _, m := range movements {
		if m.Type != movementType {
			continue
		}
		line := MovementLine{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			UnitPrice: decimal.Zero,
			Value:     decimal.Zero,
			Note:      m.Note,
			CreatedAt: m.CreatedAt,
		}
		if p, ok := byID[m.ProductID]; ok {
			line.ProductName = p.Name
			line.Unit = p.Unit
			line.UnitPrice = p.Price
			line.Value = decimal.NewFromInt(m.Quantity).Mul(p.Price)
		} else {
			line.ProductMissing = true
		}
		lines = append(lines, line)
	}
	return lines
}

// summarizeStock calcula el resumen del catálogo completo.
func summarizeStock(products []entity.Product) *StockSummary {
	s := &StockSummary{
		ProductCount:    len(products),
		TotalStockValue: decimal.Zero,
		AveragePrice:    decimal.Zero,
	}
	if len(products) == 0 {
		return s
	}
	priceSum := decimal.Zero
	for _, p := range products {
		s.TotalStockValue = s.TotalStockValue.Add(decimal.NewFromInt(p.Quantity).Mul(p.Price))
		priceSum = priceSum.Add(p.Price)
		if p.LowStock() {
			s.LowStockCount++
		}
		if p.OutOfStock() {
			s.OutOfStockCount++
		}
	}
	s.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(len(products))))
	return s
}

// summarizeConsumption cuenta entradas por urgencia y suma el costo mensual.
func summarizeConsumption(entries []ConsumptionEntry) *ConsumptionSummary {
	s := &ConsumptionSummary{TotalMonthlyCost: decimal.Zero}
	for _, e := range entries {
		switch e.Urgency {
		case UrgencyCritical:
			s.CriticalCount++
		case UrgencyWarning:
			s.WarningCount++
		default:
			s.OKCount++
		}
		s.TotalMonthlyCost = s.TotalMonthlyCost.Add(e.CostProjection)
	}
	return s
}
