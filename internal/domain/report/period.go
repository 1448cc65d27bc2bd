// Package report implementa el motor de reportes de stock: filtro por
// período, agregación por producto/categoría, proyección de consumo y
// armado del reporte final.
//
// Todo el paquete es puro: sin I/O, sin estado compartido y sin leer el
// reloj (now siempre llega como parámetro). Con las mismas entradas se
// produce siempre el mismo reporte.
package report

import (
	"time"

	"github.com/tu-usuario/stock-control/internal/domain/entity"
)

// Períodos de reporte soportados (ventana móvil hacia atrás desde now).
const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"
	PeriodAll    Period = "all" // sin límite: todos los movimientos
)

// Period es la ventana de tiempo que delimita los movimientos de un reporte.
type Period string

// Valid indica si p es uno de los períodos soportados.
func (p Period) Valid() bool {
	switch p {
	case Period7Days, Period30Days, Period90Days, PeriodAll:
		return true
	}
	return false
}

// Days devuelve el tamaño de la ventana en días; 0 para PeriodAll.
func (p Period) Days() int {
	switch p {
	case Period7Days:
		return 7
	case Period30Days:
		return 30
	case Period90Days:
		return 90
	}
	return 0
}

// FilterByPeriod devuelve los movimientos cuyo CreatedAt cae dentro de la
// ventana del período terminada en now. El corte es now - N días
// (resta de calendario) y la igualdad en el borde es inclusiva.
// PeriodAll devuelve la entrada sin cambios. Idempotente: volver a filtrar
// con el mismo período (o uno más amplio) no altera el resultado.
func FilterByPeriod(movements []entity.Movement, p Period, now time.Time) []entity.Movement {
	if p == PeriodAll {
		return movements
	}
	cutoff := now.AddDate(0, 0, -p.Days())
	filtered := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if !m.CreatedAt.Before(cutoff) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
