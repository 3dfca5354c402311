package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	domInv "github.com/jhoicas/colorstock-api/internal/domain/inventory"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// DashboardUseCase genera los agregados de las tarjetas de cabecera:
// productos, variantes de color, stock total, líneas en stock bajo y
// movimientos registrados.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetCatalogCounts  → Products + Variants
//  2. GetStockTotals    → TotalStock + LowStock
//  3. CountMovements    → Movements
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type catalogResult struct {
		products, variants int
		err                error
	}
	type stockResult struct {
		total, low int
		err        error
	}
	type movementsResult struct {
		count int
		err   error
	}

	catalogCh := make(chan catalogResult, 1)
	stockCh := make(chan stockResult, 1)
	movCh := make(chan movementsResult, 1)

	go func() {
		products, variants, err := uc.analyticsRepo.GetCatalogCounts(ctx)
		catalogCh <- catalogResult{products, variants, err}
	}()
	go func() {
		total, low, err := uc.analyticsRepo.GetStockTotals(ctx, domInv.LowStockThreshold)
		stockCh <- stockResult{total, low, err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountMovements(ctx)
		movCh <- movementsResult{count, err}
	}()

	catalog := <-catalogCh
	stock := <-stockCh
	mov := <-movCh

	if catalog.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", catalog.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", stock.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", mov.err)
	}

	return &dto.DashboardSummaryDTO{
		Products:   catalog.products,
		Variants:   catalog.variants,
		TotalStock: stock.total,
		LowStock:   stock.low,
		Movements:  mov.count,
	}, nil
}
