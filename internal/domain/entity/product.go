package entity

import "time"

// Product representa un producto del catálogo identificado por su SKU.
// Inmutable después de creado: el stock se maneja por color en InventoryLine.
type Product struct {
	ID        string
	SKU       string // código único, normalizado a mayúsculas
	Name      string
	CreatedAt time.Time
}
