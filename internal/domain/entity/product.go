package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es el stock actual: se fija al crear el producto y después solo
// lo modifica el registro de movimientos (entrada suma, salida resta).
type Product struct {
	ID         string
	CategoryID string
	Name       string
	Quantity   int64           // stock actual, nunca negativo
	MinStock   int64           // umbral de alerta de stock bajo
	Price      decimal.Decimal // precio unitario actual (sin historial de precios)
	Unit       string          // unidad de medida: "un", "kg", "lt", etc.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LowStock indica si el producto está en o por debajo de su stock mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}

// OutOfStock indica si el producto está agotado.
func (p *Product) OutOfStock() bool {
	return p.Quantity == 0
}
