package entity

import "time"

// InventoryLine representa el stock actual de un producto en un color.
// Nace con Quantity = 0; solo el motor de movimientos la modifica.
// Quantity es el estado incremental derivado del ledger de StockMovement.
type InventoryLine struct {
	ID        string
	ProductID string
	Color     string
	Quantity  int // siempre >= 0
	CreatedAt time.Time
}

// InventoryLineWithProduct es la línea junto con su producto (join para listados).
type InventoryLineWithProduct struct {
	InventoryLine
	SKU         string
	ProductName string
}
