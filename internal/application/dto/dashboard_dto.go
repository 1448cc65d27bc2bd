package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Tarjetas principales de la pantalla de inicio más las alertas de stock bajo
// y los últimos movimientos registrados.
type DashboardSummaryDTO struct {
	ProductCount    int             `json:"product_count"`
	CategoryCount   int             `json:"category_count"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`

	// Movimientos de hoy (00:00 – ahora)
	TodayEntries int `json:"today_entries"`
	TodayExits   int `json:"today_exits"`

	LowStockAlerts  []LowStockAlertDTO `json:"low_stock_alerts"`
	RecentMovements []MovementLineDTO  `json:"recent_movements"`
}

// LowStockAlertDTO producto en o bajo su stock mínimo.
type LowStockAlertDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit,omitempty"`
	Quantity    int64  `json:"quantity"`
	MinStock    int64  `json:"min_stock"`
	OutOfStock  bool   `json:"out_of_stock"`
}
