package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID string          `json:"category_id" validate:"required"`
	Quantity   int64           `json:"quantity" validate:"min=0"`
	MinStock   int64           `json:"min_stock" validate:"min=0"`
	Price      decimal.Decimal `json:"price"`
	Unit       string          `json:"unit"`
}

// UpdateProductRequest entrada para actualizar un producto. Quantity se omite:
// el stock solo cambia registrando movimientos.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID *string          `json:"category_id"`
	MinStock   *int64           `json:"min_stock" validate:"omitempty,min=0"`
	Price      *decimal.Decimal `json:"price"`
	Unit       *string          `json:"unit"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Quantity   int64           `json:"quantity"`
	MinStock   int64           `json:"min_stock"`
	Price      decimal.Decimal `json:"price"`
	Unit       string          `json:"unit"`
	LowStock   bool            `json:"low_stock"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
