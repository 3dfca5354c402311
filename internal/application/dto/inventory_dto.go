package dto

import "time"

// CreateInventoryLineRequest entrada para crear una variante de color.
// La línea nace con quantity 0; el stock entra después vía movimientos.
type CreateInventoryLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Color     string `json:"color" validate:"required,min=1,max=100"`
}

// InventoryLineResponse salida de una línea de inventario con su producto.
type InventoryLineResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	Color       string    `json:"color"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"` // In Stock | Low Stock | Out of Stock
	CreatedAt   time.Time `json:"created_at"`
}

// InventoryListResponse listado de líneas, created_at DESC.
type InventoryListResponse struct {
	Items []InventoryLineResponse `json:"items"`
	Total int                     `json:"total"`
}
