// Package inventory contiene la lógica pura de dominio sobre stock y
// movimientos: clasificación de estado y estadísticas derivadas.
package inventory

// LowStockThreshold cantidad máxima (inclusive) considerada stock bajo.
const LowStockThreshold = 5

// Estados de stock de una línea de inventario.
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// Status clasifica una cantidad de stock:
// 0 => Out of Stock; 1..LowStockThreshold => Low Stock; resto => In Stock.
func Status(quantity int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
