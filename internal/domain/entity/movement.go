package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada: suma al stock del producto
	MovementTypeExit  = "exit"  // salida: resta del stock del producto
)

// ValidMovementType indica si t es uno de los tipos de movimiento conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}

// Movement representa un movimiento de stock (entrada o salida).
// Inmutable una vez registrado; Quantity siempre es positiva, el signo
// lo determina Type.
type Movement struct {
	ID        string
	ProductID string
	Type      string // entry, exit
	Quantity  int64  // siempre > 0
	Note      string // opcional: motivo, referencia, proveedor, etc.
	CreatedAt time.Time
}
