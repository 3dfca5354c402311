package repository

import "context"

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetCatalogCounts devuelve productos y variantes registrados.
	GetCatalogCounts(ctx context.Context) (products, variants int, err error)
	// GetStockTotals devuelve la suma de stock y el número de líneas en
	// stock bajo (0 < quantity <= lowThreshold).
	GetStockTotals(ctx context.Context, lowThreshold int) (totalStock, lowStock int, err error)
	// CountMovements devuelve el total de movimientos registrados.
	CountMovements(ctx context.Context) (int, error)
}
