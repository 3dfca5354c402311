package dto

import "github.com/shopspring/decimal"

// MovementSummaryDTO estadísticas derivadas del conjunto de movimientos visible.
type MovementSummaryDTO struct {
	TotalIn            int             `json:"total_in"`
	TotalOut           int             `json:"total_out"`
	NetChange          int             `json:"net_change"`
	Transactions       int             `json:"transactions"`
	TopProduct         string          `json:"top_product,omitempty"`
	AvgTransactionSize decimal.Decimal `json:"avg_transaction_size"`
}

// DashboardSummaryDTO agregados para las tarjetas de cabecera.
type DashboardSummaryDTO struct {
	Products   int `json:"products"`
	Variants   int `json:"variants"`
	TotalStock int `json:"total_stock"`
	LowStock   int `json:"low_stock"`
	Movements  int `json:"movements"`
}

// InventoryReportRequest query params del reporte de inventario.
type InventoryReportRequest struct {
	ProductID   string `query:"product_id"`   // id | all
	MinQuantity *int   `query:"min_quantity"` // nil = sin mínimo
	MaxQuantity *int   `query:"max_quantity"` // nil = sin máximo
	SortBy      string `query:"sort_by"`      // quantity (DESC) | name (ASC)
}

// ReportRowDTO fila del reporte: línea con producto y estado.
type ReportRowDTO struct {
	InventoryID string `json:"inventory_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Color       string `json:"color"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
}

// ChartPointDTO punto de la gráfica de barras (una barra por línea).
type ChartPointDTO struct {
	Name     string `json:"name"` // "Producto (Color)"
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// PieSliceDTO porción de la gráfica de torta (agregado por producto).
type PieSliceDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ReportStatsDTO totales del conjunto filtrado.
type ReportStatsDTO struct {
	TotalItems    int `json:"total_items"`
	TotalQuantity int `json:"total_quantity"`
	LowStockItems int `json:"low_stock_items"`
	OutOfStock    int `json:"out_of_stock_items"`
}

// InventoryReportResponse reporte completo: tabla, gráficas y totales.
type InventoryReportResponse struct {
	Rows  []ReportRowDTO  `json:"rows"`
	Bars  []ChartPointDTO `json:"bar_chart"`
	Pie   []PieSliceDTO   `json:"pie_chart"`
	Stats ReportStatsDTO  `json:"stats"`
}
