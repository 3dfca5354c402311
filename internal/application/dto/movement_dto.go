package dto

import "time"

// ApplyMovementRequest body para registrar un movimiento de stock.
type ApplyMovementRequest struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Type        string `json:"movement_type" validate:"required,oneof=IN OUT"`
	Notes       string `json:"notes,omitempty"`
}

// BatchMovementRequest body para aplicar una lista ordenada de movimientos.
// Aplicación secuencial best-effort: se detiene en el primer fallo y los
// movimientos ya aplicados quedan aplicados.
type BatchMovementRequest struct {
	Movements []ApplyMovementRequest `json:"movements" validate:"required,min=1"`
}

// MovementResponse salida de un movimiento con su línea y producto.
type MovementResponse struct {
	ID           string    `json:"id"`
	InventoryID  string    `json:"inventory_id"`
	SKU          string    `json:"sku,omitempty"`
	ProductName  string    `json:"product_name,omitempty"`
	Color        string    `json:"color,omitempty"`
	Quantity     int       `json:"quantity"`
	Type         string    `json:"movement_type"`
	Notes        string    `json:"notes,omitempty"`
	MovementDate time.Time `json:"movement_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// BatchMovementResponse resultado de la aplicación best-effort.
// FailedIndex es -1 si todo el lote se aplicó.
type BatchMovementResponse struct {
	Applied     []MovementResponse `json:"applied"`
	FailedIndex int                `json:"failed_index"`
	Error       string             `json:"error,omitempty"`
}

// MovementListRequest query params del listado filtrado (tabla de análisis).
type MovementListRequest struct {
	MovementType string `query:"movement_type"` // IN | OUT | all
	ProductID    string `query:"product_id"`    // id | all
	DateFrom     string `query:"date_from"`     // YYYY-MM-DD
	DateTo       string `query:"date_to"`       // YYYY-MM-DD (inclusive, fin de día)
	Notes        string `query:"notes"`
	Page         int    `query:"page"`
	Limit        int    `query:"limit"`
}

// MovementListResponse página de movimientos más metadatos y resumen.
type MovementListResponse struct {
	Rows       []MovementResponse `json:"rows"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Limit      int                `json:"limit"`
	Summary    MovementSummaryDTO `json:"summary"`
}
