package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetCatalogCounts devuelve productos y variantes registrados.
func (r *AnalyticsRepo) GetCatalogCounts(ctx context.Context) (products, variants int, err error) {
	query := `
		SELECT (SELECT COUNT(*) FROM products), (SELECT COUNT(*) FROM inventory)`
	if err := r.q.QueryRow(ctx, query).Scan(&products, &variants); err != nil {
		return 0, 0, fmt.Errorf("catalog counts: %w", err)
	}
	return products, variants, nil
}

// GetStockTotals devuelve la suma de stock y el número de líneas en stock
// bajo (0 < quantity <= lowThreshold). COALESCE cubre el inventario vacío.
func (r *AnalyticsRepo) GetStockTotals(ctx context.Context, lowThreshold int) (totalStock, lowStock int, err error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0),
		       COUNT(*) FILTER (WHERE quantity > 0 AND quantity <= $1)
		FROM inventory`
	if err := r.q.QueryRow(ctx, query, lowThreshold).Scan(&totalStock, &lowStock); err != nil {
		return 0, 0, fmt.Errorf("stock totals: %w", err)
	}
	return totalStock, lowStock, nil
}

// CountMovements devuelve el total de movimientos registrados.
func (r *AnalyticsRepo) CountMovements(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}
