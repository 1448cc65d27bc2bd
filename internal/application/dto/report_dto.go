package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportRequest parámetros para GET /api/reports.
type ReportRequest struct {
	Kind       string `query:"kind"`        // entries | exits | general | consumption
	Period     string `query:"period"`      // 7d | 30d | 90d | all
	ProductIDs string `query:"product_ids"` // opcional, separados por coma
}

// ── Secciones del reporte ─────────────────────────────────────────────────────

// ReportTotalsDTO totales del conjunto de movimientos filtrado.
type ReportTotalsDTO struct {
	EntryQuantity int64           `json:"entry_quantity"`
	ExitQuantity  int64           `json:"exit_quantity"`
	EntryValue    decimal.Decimal `json:"entry_value"`
	ExitValue     decimal.Decimal `json:"exit_value"`
	NetQuantity   int64           `json:"net_quantity"`
	NetValue      decimal.Decimal `json:"net_value"`
	EntryCount    int             `json:"entry_count"`
	ExitCount     int             `json:"exit_count"`
}

// ProductTotalDTO posición de un producto en el ranking del período.
type ProductTotalDTO struct {
	Rank          int             `json:"rank"` // 1 = mayor cantidad
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Unit          string          `json:"unit,omitempty"`
	Quantity      int64           `json:"quantity"`
	MovementCount int             `json:"movement_count"`
	Value         decimal.Decimal `json:"value"`
}

// CategoryBreakdownDTO resumen por categoría del stock actual.
type CategoryBreakdownDTO struct {
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	Color         string          `json:"color,omitempty"`
	ProductCount  int             `json:"product_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// MovementLineDTO movimiento anotado para los listados del reporte.
// Los movimientos de productos eliminados llevan la etiqueta genérica.
type MovementLineDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit,omitempty"`
	Type        string          `json:"type"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Value       decimal.Decimal `json:"value"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StockSummaryDTO estado actual del catálogo (reporte general).
type StockSummaryDTO struct {
	ProductCount    int             `json:"product_count"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	AveragePrice    decimal.Decimal `json:"average_price"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
}

// ConsumptionEntryDTO proyección de consumo de un producto.
type ConsumptionEntryDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Unit              string          `json:"unit,omitempty"`
	CategoryID        string          `json:"category_id"`
	CategoryName      string          `json:"category_name,omitempty"`
	CategoryColor     string          `json:"category_color,omitempty"`
	TotalConsumed     int64           `json:"total_consumed"`
	MovementCount     int             `json:"movement_count"`
	DailyAverage      decimal.Decimal `json:"daily_average"`
	MonthlyProjection decimal.Decimal `json:"monthly_projection"`
	DaysUntilEmpty    *int64          `json:"days_until_empty"` // null sin consumo reciente
	CostProjection    decimal.Decimal `json:"cost_projection"`
	Urgency           string          `json:"urgency"` // critical | warning | ok
}

// ConsumptionSummaryDTO acumulados del reporte de consumo.
type ConsumptionSummaryDTO struct {
	CriticalCount    int             `json:"critical_count"`
	WarningCount     int             `json:"warning_count"`
	OKCount          int             `json:"ok_count"`
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`
}

// ── Reporte completo ──────────────────────────────────────────────────────────

// ReportDTO respuesta de GET /api/reports. Las secciones ausentes para el
// kind pedido van con omitempty.
type ReportDTO struct {
	Kind        string    `json:"kind"`
	Period      string    `json:"period"`
	GeneratedAt time.Time `json:"generated_at"`
	ProductIDs  []string  `json:"product_ids,omitempty"`

	Totals     ReportTotalsDTO        `json:"totals"`
	ByCategory []CategoryBreakdownDTO `json:"by_category"`

	Ranking   []ProductTotalDTO `json:"ranking,omitempty"`
	Movements []MovementLineDTO `json:"movements,omitempty"`

	Stock *StockSummaryDTO `json:"stock,omitempty"`

	Consumption        []ConsumptionEntryDTO  `json:"consumption,omitempty"`
	ConsumptionSummary *ConsumptionSummaryDTO `json:"consumption_summary,omitempty"`
}
