package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/report"
)

// Escenario 1 de referencia: 3 salidas de 5 unidades en una ventana de 30
// días sobre un producto con stock 50 y precio 2.00.
func TestProjectConsumption_EscenarioBase30Dias(t *testing.T) {
	products := []entity.Product{product("p1", "c1", "Harina", 50, 20, "2.00")}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos", Color: "#22c55e"}}
	exits := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 5, 25),
		mov("m2", "p1", entity.MovementTypeExit, 5, 15),
		mov("m3", "p1", entity.MovementTypeExit, 5, 5),
	}

	entries := report.ProjectConsumption(exits, products, categories, report.Period30Days)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.EqualValues(t, 15, e.TotalConsumed)
	assert.Equal(t, 3, e.MovementCount)
	assert.True(t, e.DailyAverage.Equal(decimal.RequireFromString("0.5")), "DailyAverage = %s", e.DailyAverage)
	assert.True(t, e.MonthlyProjection.Equal(decimal.RequireFromString("15")), "MonthlyProjection = %s", e.MonthlyProjection)
	require.NotNil(t, e.DaysUntilEmpty)
	assert.EqualValues(t, 100, *e.DaysUntilEmpty) // round(50 / 0.5)
	assert.Equal(t, report.UrgencyOK, e.Urgency)
	assert.True(t, e.CostProjection.Equal(decimal.RequireFromString("30.00")), "CostProjection = %s", e.CostProjection)
	assert.Equal(t, "Alimentos", e.CategoryName)
}

// Bordes de urgencia: 7 días → crítico, 8 → advertencia, 31 → ok.
func TestProjectConsumption_BordesDeUrgencia(t *testing.T) {
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}

	cases := []struct {
		name     string
		stock    int64
		daily    int64 // consumo total en la ventana de 7 días = daily*7
		wantDays int64
		want     string
	}{
		{"critico_7", 7, 1, 7, report.UrgencyCritical},
		{"advertencia_8", 8, 1, 8, report.UrgencyWarning},
		{"advertencia_30", 30, 1, 30, report.UrgencyWarning},
		{"ok_31", 31, 1, 31, report.UrgencyOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := []entity.Product{product("p1", "c1", "Harina", tc.stock, 0, "1.00")}
			exits := []entity.Movement{mov("m1", "p1", entity.MovementTypeExit, tc.daily*7, 3)}

			entries := report.ProjectConsumption(exits, products, categories, report.Period7Days)

			require.Len(t, entries, 1)
			require.NotNil(t, entries[0].DaysUntilEmpty)
			assert.Equal(t, tc.wantDays, *entries[0].DaysUntilEmpty)
			assert.Equal(t, tc.want, entries[0].Urgency)
		})
	}
}

// Productos sin salidas en la ventana no aparecen: no se emiten entradas
// de consumo cero.
func TestProjectConsumption_OmiteSinConsumo(t *testing.T) {
	products := []entity.Product{
		product("p1", "c1", "Harina", 50, 20, "2.00"),
		product("p2", "c1", "Azúcar", 30, 10, "3.50"),
	}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}
	exits := []entity.Movement{mov("m1", "p1", entity.MovementTypeExit, 5, 2)}

	entries := report.ProjectConsumption(exits, products, categories, report.Period30Days)

	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
}

// Piso de un solo movimiento: con PeriodAll y una única salida, el span es
// cero y activeDays queda en 1; el promedio diario es todo el consumo.
func TestProjectConsumption_PisoUnSoloMovimiento(t *testing.T) {
	products := []entity.Product{product("p1", "c1", "Harina", 50, 20, "2.00")}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}
	exits := []entity.Movement{mov("m1", "p1", entity.MovementTypeExit, 10, 100)}

	entries := report.ProjectConsumption(exits, products, categories, report.PeriodAll)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.True(t, e.DailyAverage.Equal(decimal.RequireFromString("10")), "DailyAverage = %s", e.DailyAverage)
	assert.True(t, e.MonthlyProjection.Equal(decimal.RequireFromString("300")), "MonthlyProjection = %s", e.MonthlyProjection)
}

// Con PeriodAll el span se calcula por producto con su primera y última
// salida, no con los límites globales del historial.
func TestProjectConsumption_SpanPorProducto(t *testing.T) {
	products := []entity.Product{
		product("p1", "c1", "Harina", 100, 0, "1.00"),
		product("p2", "c1", "Azúcar", 100, 0, "1.00"),
	}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}
	exits := []entity.Movement{
		// p1: salidas separadas 10 días → activeDays 10, promedio 2
		mov("m1", "p1", entity.MovementTypeExit, 10, 110),
		mov("m2", "p1", entity.MovementTypeExit, 10, 100),
		// p2: salidas separadas 2 días → activeDays 2, promedio 5
		mov("m3", "p2", entity.MovementTypeExit, 5, 4),
		mov("m4", "p2", entity.MovementTypeExit, 5, 2),
	}

	entries := report.ProjectConsumption(exits, products, categories, report.PeriodAll)

	require.Len(t, entries, 2)
	byProduct := map[string]report.ConsumptionEntry{}
	for _, e := range entries {
		byProduct[e.ProductID] = e
	}
	assert.True(t, byProduct["p1"].DailyAverage.Equal(decimal.RequireFromString("2")))
	assert.True(t, byProduct["p2"].DailyAverage.Equal(decimal.RequireFromString("5")))
}

func TestProjectConsumption_OrdenDescendentePorConsumo(t *testing.T) {
	products := []entity.Product{
		product("p1", "c1", "Harina", 100, 0, "1.00"),
		product("p2", "c1", "Azúcar", 100, 0, "1.00"),
		product("p3", "c1", "Sal", 100, 0, "1.00"),
	}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}
	exits := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 3, 1),
		mov("m2", "p2", entity.MovementTypeExit, 20, 2),
		mov("m3", "p3", entity.MovementTypeExit, 9, 3),
	}

	entries := report.ProjectConsumption(exits, products, categories, report.Period30Days)

	require.Len(t, entries, 3)
	assert.Equal(t, "p2", entries[0].ProductID)
	assert.Equal(t, "p3", entries[1].ProductID)
	assert.Equal(t, "p1", entries[2].ProductID)
}

// Productos eliminados del catálogo no entran al análisis de consumo.
func TestProjectConsumption_IgnoraProductosEliminados(t *testing.T) {
	products := []entity.Product{product("p1", "c1", "Harina", 10, 0, "1.00")}
	categories := []entity.Category{{ID: "c1", Name: "Alimentos"}}
	exits := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 5, 1),
		mov("m2", "ghost", entity.MovementTypeExit, 50, 1),
	}

	entries := report.ProjectConsumption(exits, products, categories, report.Period7Days)

	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
}
