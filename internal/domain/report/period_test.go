package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/report"
)

// now fijo para que los tests no dependan del reloj.
var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// mov construye un movimiento con edad relativa a testNow.
func mov(id, productID, movType string, qty int64, daysAgo int) entity.Movement {
	return entity.Movement{
		ID:        id,
		ProductID: productID,
		Type:      movType,
		Quantity:  qty,
		CreatedAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestFilterByPeriod_VentanasFijas(t *testing.T) {
	movements := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 1, 0),   // hoy
		mov("m2", "p1", entity.MovementTypeExit, 1, 5),   // dentro de 7d
		mov("m3", "p1", entity.MovementTypeExit, 1, 20),  // dentro de 30d
		mov("m4", "p1", entity.MovementTypeExit, 1, 60),  // dentro de 90d
		mov("m5", "p1", entity.MovementTypeExit, 1, 365), // solo all
	}

	cases := []struct {
		period report.Period
		want   int
	}{
		{report.Period7Days, 2},
		{report.Period30Days, 3},
		{report.Period90Days, 4},
		{report.PeriodAll, 5},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			got := report.FilterByPeriod(movements, tc.period, testNow)
			assert.Len(t, got, tc.want)
		})
	}
}

// El corte es inclusivo: un movimiento exactamente en now-7d entra en 7d.
func TestFilterByPeriod_BordeInclusivo(t *testing.T) {
	boundary := entity.Movement{ID: "mb", ProductID: "p1", Type: entity.MovementTypeExit,
		Quantity: 1, CreatedAt: testNow.AddDate(0, 0, -7)}
	justOutside := entity.Movement{ID: "mo", ProductID: "p1", Type: entity.MovementTypeExit,
		Quantity: 1, CreatedAt: testNow.AddDate(0, 0, -7).Add(-time.Second)}

	got := report.FilterByPeriod([]entity.Movement{boundary, justOutside}, report.Period7Days, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "mb", got[0].ID)
}

// Monotonicidad: 7d ⊆ 30d ⊆ 90d ⊆ all para el mismo now.
func TestFilterByPeriod_Monotonia(t *testing.T) {
	var movements []entity.Movement
	for i := 0; i < 120; i++ {
		movements = append(movements, mov(fmt.Sprintf("m%d", i), "p1", entity.MovementTypeExit, 1, i))
	}

	d7 := report.FilterByPeriod(movements, report.Period7Days, testNow)
	d30 := report.FilterByPeriod(movements, report.Period30Days, testNow)
	d90 := report.FilterByPeriod(movements, report.Period90Days, testNow)
	all := report.FilterByPeriod(movements, report.PeriodAll, testNow)

	assert.Subset(t, ids(d30), ids(d7))
	assert.Subset(t, ids(d90), ids(d30))
	assert.Subset(t, ids(all), ids(d90))
}

// Idempotencia: filtrar dos veces con el mismo período no cambia el resultado.
func TestFilterByPeriod_Idempotente(t *testing.T) {
	movements := []entity.Movement{
		mov("m1", "p1", entity.MovementTypeExit, 1, 3),
		mov("m2", "p1", entity.MovementTypeExit, 1, 45),
		mov("m3", "p1", entity.MovementTypeExit, 1, 80),
	}
	once := report.FilterByPeriod(movements, report.Period30Days, testNow)
	twice := report.FilterByPeriod(once, report.Period30Days, testNow)
	assert.Equal(t, once, twice)

	// Refiltrar con un período más amplio tampoco cambia el conjunto.
	wider := report.FilterByPeriod(once, report.Period90Days, testNow)
	assert.Equal(t, once, wider)
}

func TestFilterByPeriod_AllDevuelveEntradaSinCambios(t *testing.T) {
	movements := []entity.Movement{mov("m1", "p1", entity.MovementTypeEntry, 5, 400)}
	got := report.FilterByPeriod(movements, report.PeriodAll, testNow)
	assert.Equal(t, movements, got)
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, report.Period30Days.Valid())
	assert.True(t, report.PeriodAll.Valid())
	assert.False(t, report.Period("15d").Valid())
	assert.False(t, report.Period("").Valid())
}

func ids(movements []entity.Movement) []string {
	out := make([]string, len(movements))
	for i, m := range movements {
		out[i] = m.ID
	}
	return out
}
