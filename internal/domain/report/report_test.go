package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/report"
)

func assembleParams(kind report.Kind, period report.Period, productIDs ...string) report.Params {
	return report.Params{Kind: kind, Period: period, ProductIDs: productIDs, Now: testNow}
}

func TestAssemble_PeriodoOKindInvalido(t *testing.T) {
	products, categories := testCatalog()

	_, err := report.Assemble(assembleParams("ventas", report.Period30Days), nil, products, categories)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = report.Assemble(assembleParams(report.KindGeneral, "15d"), nil, products, categories)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssemble_Entries(t *testing.T) {
	products, categories := testCatalog()
	movements := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeEntry, 10, 1),
		mov("m2", "p2", entity.MovementTypeEntry, 4, 2),
		mov("m3", "p1", entity.MovementTypeExit, 5, 1),
	}

	r, err := report.Assemble(assembleParams(report.KindEntries, report.Period30Days), movements, products, categories)

	require.NoError(t, err)
	assert.Equal(t, report.KindEntries, r.Kind)
	require.Len(t, r.Movements, 2) // solo las entradas, anotadas
	assert.Equal(t, "Harina", r.Movements[0].ProductName)
	assert.True(t, r.Movements[0].Value.Equal(decimal.RequireFromString("20.00")))
	require.Len(t, r.Ranking, 2)
	assert.Equal(t, "p1", r.Ranking[0].ProductID)
	assert.Nil(t, r.Stock)
	assert.Nil(t, r.ConsumptionSummary)
}

func TestAssemble_ExitsConProductoEliminado(t *testing.T) {
	products, categories := testCatalog()
	movements := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 5, 1),
		mov("m2", "ghost", entity.MovementTypeExit, 2, 1),
	}

	r, err := report.Assemble(assembleParams(report.KindExits, report.Period7Days), movements, products, categories)

	require.NoError(t, err)
	require.Len(t, r.Movements, 2)
	// La línea del producto eliminado queda marcada; la etiqueta la pone el renderer.
	var missing int
	for _, line := range r.Movements {
		if line.ProductMissing {
			missing++
			assert.Empty(t, line.ProductName)
			assert.True(t, line.Value.Equal(decimal.Zero))
		}
	}
	assert.Equal(t, 1, missing)
}

// Escenario 3 de referencia: resumen de stock del reporte general.
func TestAssemble_GeneralResumenDeStock(t *testing.T) {
	products := []entity.Product{
		product("p1", "c1", "A", 5, 0, "10.00"),
		product("p2", "c1", "B", 3, 5, "20.00"), // bajo stock (3 <= 5)
	}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}

	r, err := report.Assemble(assembleParams(report.KindGeneral, report.PeriodAll), nil, products, categories)

	require.NoError(t, err)
	require.NotNil(t, r.Stock)
	assert.Equal(t, 2, r.Stock.ProductCount)
	assert.True(t, r.Stock.TotalStockValue.Equal(decimal.RequireFromString("110.00")), "TotalStockValue = %s", r.Stock.TotalStockValue)
	assert.True(t, r.Stock.AveragePrice.Equal(decimal.RequireFromString("15.00")), "AveragePrice = %s", r.Stock.AveragePrice)
	assert.Equal(t, 1, r.Stock.LowStockCount)
	assert.Equal(t, 0, r.Stock.OutOfStockCount)
	require.Len(t, r.ByCategory, 1)
}

func TestAssemble_Consumption(t *testing.T) {
	products, categories := testCatalog()
	movements := []entity.Movement{
		// p3: stock 8, consumo 28 en 7d → promedio 4, se agota en round(8/4)=2 días
		mov("m1", "p3", entity.MovementTypeExit, 28, 3),
		// p1: stock 50, consumo 7 en 7d → promedio 1, 50 días
		mov("m2", "p1", entity.MovementTypeExit, 7, 2),
	}

	r, err := report.Assemble(assembleParams(report.KindConsumption, report.Period7Days), movements, products, categories)

	require.NoError(t, err)
	require.Len(t, r.Consumption, 2)
	require.NotNil(t, r.ConsumptionSummary)
	assert.Equal(t, 1, r.ConsumptionSummary.CriticalCount)
	assert.Equal(t, 0, r.ConsumptionSummary.WarningCount)
	assert.Equal(t, 1, r.ConsumptionSummary.OKCount)

	// costo total = suma de proyecciones: p3 4*30*10.00 + p1 1*30*2.00
	want := decimal.RequireFromString("1260.00")
	assert.True(t, r.ConsumptionSummary.TotalMonthlyCost.Equal(want), "TotalMonthlyCost = %s", r.ConsumptionSummary.TotalMonthlyCost)
}

// Escenario 5 de referencia: el filtro de productos restringe movimientos y
// rankings, pero el desglose por categoría sigue siendo de todo el catálogo.
func TestAssemble_FiltroDeProductos(t *testing.T) {
	products, categories := testCatalog()
	movements := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeEntry, 10, 1),
		mov("m2", "p2", entity.MovementTypeEntry, 4, 2),
	}

	r, err := report.Assemble(assembleParams(report.KindEntries, report.Period30Days, "p2"), movements, products, categories)

	require.NoError(t, err)
	require.Len(t, r.Movements, 1)
	assert.Equal(t, "p2", r.Movements[0].ProductID)
	require.Len(t, r.Ranking, 1)
	assert.Equal(t, "p2", r.Ranking[0].ProductID)
	assert.EqualValues(t, 4, r.Totals.EntryQuantity)
	assert.Len(t, r.ByCategory, 2) // catálogo completo, sin filtrar
}

// Con entradas vacías el reporte sale bien formado, nunca falla.
func TestAssemble_EntradasVacias(t *testing.T) {
	for _, kind := range []report.Kind{report.KindEntries, report.KindExits, report.KindGeneral, report.KindConsumption} {
		t.Run(string(kind), func(t *testing.T) {
			r, err := report.Assemble(assembleParams(kind, report.Period30Days), nil, nil, nil)
			require.NoError(t, err)
			assert.Empty(t, r.Movements)
			assert.Empty(t, r.Consumption)
			assert.EqualValues(t, 0, r.Totals.EntryQuantity)
			if kind == report.KindGeneral {
				require.NotNil(t, r.Stock)
				assert.Equal(t, 0, r.Stock.ProductCount)
				assert.True(t, r.Stock.AveragePrice.Equal(decimal.Zero))
			}
		})
	}
}

// Determinismo: mismas entradas y mismo now producen reportes idénticos.
func TestAssemble_Determinista(t *testing.T) {
	products, categories := testCatalog()
	movements := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 5, 1),
		mov("m2", "p2", entity.MovementTypeEntry, 3, 2),
	}
	params := assembleParams(report.KindGeneral, report.Period90Days)

	r1, err1 := report.Assemble(params, movements, products, categories)
	r2, err2 := report.Assemble(params, movements, products, categories)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2)
}
