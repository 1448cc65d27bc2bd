package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// ProductTotal acumulado de movimientos de un producto dentro del período.
// Value usa el precio actual del producto (no hay historial de precios).
type ProductTotal struct {
	ProductID     string
	ProductName   string
	Unit          string
	Quantity      int64
	MovementCount int
	Value         decimal.Decimal
}

// CategoryBreakdown resumen por categoría del estado ACTUAL del catálogo.
// Independiente del período: refleja el stock de hoy, no los movimientos.
type CategoryBreakdown struct {
	CategoryID    string
	CategoryName  string
	Color         string
	ProductCount  int
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// Totals totales del conjunto de movimientos filtrado.
//
// EntryCount/ExitCount cuentan TODOS los registros, incluidos los que
// apuntan a productos ya eliminados del catálogo; las sumas de cantidad y
// valor solo incluyen movimientos con producto resoluble, de modo que
// siempre cuadran con los acumulados por producto de los rankings.
type Totals struct {
	EntryQuantity int64
	ExitQuantity  int64
	EntryValue    decimal.Decimal
	ExitValue     decimal.Decimal
	NetQuantity   int64 // EntryQuantity - ExitQuantity
	NetValue      decimal.Decimal
	EntryCount    int
	ExitCount     int
}

// Aggregation salida del agregador: rankings por producto para cada lado
// (entradas y salidas), desglose por categoría y totales.
type Aggregation struct {
	EntryRanking []ProductTotal // orden descendente por cantidad
	ExitRanking  []ProductTotal
	ByCategory   []CategoryBreakdown // orden descendente por valor total
	Totals       Totals
}

// Aggregate agrupa los movimientos ya filtrados por producto y por categoría.
//
// Los rankings devuelven la lista completa ordenada; el caller decide el
// top-N para gráficos. Los empates conservan el orden de primera aparición
// en el listado de movimientos (sort estable).
func Aggregate(movements []entity.Movement, products []entity.Product, categories []entity.Category) Aggregation {
	byID := productIndex(products)

	agg := Aggregation{
		Totals: Totals{
			EntryValue: decimal.Zero,
			ExitValue:  decimal.Zero,
			NetValue:   decimal.Zero,
		},
	}

	entryTotals := newTotalsByProduct(products)
	exitTotals := newTotalsByProduct(products)

	for _, m := range movements {
		isEntry := m.Type == entity.MovementTypeEntry
		if isEntry {
			agg.Totals.EntryCount++
		} else {
			agg.Totals.ExitCount++
		}

		p, ok := byID[m.ProductID]
		if !ok {
			// Producto eliminado: cuenta como registro pero no suma cantidad
			// ni valor (no hay precio con el que valorarlo).
			continue
		}
		value := decimal.NewFromInt(m.Quantity).Mul(p.Price)
		if isEntry {
			agg.Totals.EntryQuantity += m.Quantity
			agg.Totals.EntryValue = agg.Totals.EntryValue.Add(value)
			entryTotals.add(p, m.Quantity, value)
		} else {
			agg.Totals.ExitQuantity += m.Quantity
			agg.Totals.ExitValue = agg.Totals.ExitValue.Add(value)
			exitTotals.add(p, m.Quantity, value)
		}
	}

	agg.Totals.NetQuantity = agg.Totals.EntryQuantity - agg.Totals.ExitQuantity
	agg.Totals.NetValue = agg.Totals.EntryValue.Sub(agg.Totals.ExitValue)

	agg.EntryRanking = entryTotals.ranking()
	agg.ExitRanking = exitTotals.ranking()
	agg.ByCategory = BreakdownByCategory(products, categories)

	return agg
}

// BreakdownByCategory arma el desglose por categoría desde el catálogo
// COMPLETO (cantidades y precios actuales). Las categorías sin productos se
// excluyen. Orden descendente por valor total.
func BreakdownByCategory(products []entity.Product, categories []entity.Category) []CategoryBreakdown {
	byCategory := make(map[string]*CategoryBreakdown, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		byCategory[c.ID] = &CategoryBreakdown{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Color:        c.Color,
			TotalValue:   decimal.Zero,
		}
		order = append(order, c.ID)
	}

	for _, p := range products {
		b, ok := byCategory[p.CategoryID]
		if !ok {
			continue
		}
		b.ProductCount++
		b.TotalQuantity += p.Quantity
		b.TotalValue = b.TotalValue.Add(decimal.NewFromInt(p.Quantity).Mul(p.Price))
	}

	breakdown := make([]CategoryBreakdown, 0, len(order))
	for _, id := range order {
		if b := byCategory[id]; b.ProductCount > 0 {
			breakdown = append(breakdown, *b)
		}
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalValue.GreaterThan(breakdown[j].TotalValue)
	})
	return breakdown
}

// productIndex construye el lookup productID → producto.
func productIndex(products []entity.Product) map[string]entity.Product {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

// totalsByProduct acumula totales por producto preservando el orden de
// primera aparición, para que el sort estable del ranking desempate por él.
type totalsByProduct struct {
	byID  map[string]*ProductTotal
	order []string
}

func newTotalsByProduct(products []entity.Product) *totalsByProduct {
	return &totalsByProduct{
		byID:  make(map[string]*ProductTotal, len(products)),
		order: make([]string, 0, len(products)),
	}
}

func (t *totalsByProduct) add(p entity.Product, qty int64, value decimal.Decimal) {
	pt, ok := t.byID[p.ID]
	if !ok {
		pt = &ProductTotal{
			ProductID:   p.ID,
			ProductName: p.Name,
			Unit:        p.Unit,
			Value:       decimal.Zero,
		}
		t.byID[p.ID] = pt
		t.order = append(t.order, p.ID)
	}
	pt.Quantity += qty
	pt.MovementCount++
	pt.Value = pt.Value.Add(value)
}

func (t *totalsByProduct) ranking() []ProductTotal {
	ranking := make([]ProductTotal, 0, len(t.order))
	for _, id := range t.order {
		ranking = append(ranking, *t.byID[id])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	return ranking
}
