package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType indica si el tipo es uno de los reconocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement representa un movimiento de stock (entrada o salida) sobre una
// línea de inventario. Es el ledger de auditoría: append-only, nunca se
// actualiza ni se borra.
type StockMovement struct {
	ID           string
	InventoryID  string
	Quantity     int // siempre > 0; el signo lo da Type
	Type         string
	Notes        string
	MovementDate time.Time
	CreatedAt    time.Time
}

// MovementWithDetails es el movimiento junto con su línea y producto
// (join para la tabla de análisis y el historial).
type MovementWithDetails struct {
	StockMovement
	Color       string
	SKU         string
	ProductName string
}
