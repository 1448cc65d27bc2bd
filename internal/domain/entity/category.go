package entity

import "time"

// Category representa una categoría de productos. Datos de referencia estáticos.
type Category struct {
	ID        string
	Name      string
	Color     string // color hex para gráficos y etiquetas de la UI
	CreatedAt time.Time
	UpdatedAt time.Time
}
