// Package analytics contiene los casos de uso de reportes: el reporte de
// inventario con gráficas y las tarjetas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	domInv "github.com/jhoicas/colorstock-api/internal/domain/inventory"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// ReportUseCase genera el reporte de inventario: tabla filtrada, serie para
// la gráfica de barras, agregado por producto para la torta y totales.
// El filtrado y la agregación son puros sobre el conjunto leído.
type ReportUseCase struct {
	invRepo repository.InventoryRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(invRepo repository.InventoryRepository) *ReportUseCase {
	return &ReportUseCase{invRepo: invRepo}
}

// GetInventoryReport lee el inventario y aplica filtros de producto y rango
// de cantidad; ordena por cantidad DESC (default) o nombre ASC.
func (uc *ReportUseCase) GetInventoryReport(ctx context.Context, req dto.InventoryReportRequest) (*dto.InventoryReportResponse, error) {
	lines, err := uc.invRepo.ListWithProduct(ctx, "")
	if err != nil {
		return nil, err
	}

	filtered := filterLines(lines, req)
	sortLines(filtered, req.SortBy)

	resp := &dto.InventoryReportResponse{
		Rows: make([]dto.ReportRowDTO, 0, len(filtered)),
		Bars: make([]dto.ChartPointDTO, 0, len(filtered)),
	}

	pieTotals := map[string]int{}
	var pieOrder []string

	for _, l := range filtered {
		status := domInv.Status(l.Quantity)
		resp.Rows = append(resp.Rows, dto.ReportRowDTO{
			InventoryID: l.ID,
			SKU:         l.SKU,
			ProductName: l.ProductName,
			Color:       l.Color,
			Quantity:    l.Quantity,
			Status:      status,
		})
		resp.Bars = append(resp.Bars, dto.ChartPointDTO{
			Name:     fmt.Sprintf("%s (%s)", l.ProductName, l.Color),
			SKU:      l.SKU,
			Quantity: l.Quantity,
		})

		if _, seen := pieTotals[l.ProductName]; !seen {
			pieOrder = append(pieOrder, l.ProductName)
		}
		pieTotals[l.ProductName] += l.Quantity

		resp.Stats.TotalQuantity += l.Quantity
		switch status {
		case domInv.StatusLowStock:
			resp.Stats.LowStockItems++
		case domInv.StatusOutOfStock:
			resp.Stats.OutOfStock++
		}
	}
	resp.Stats.TotalItems = len(filtered)

	resp.Pie = make([]dto.PieSliceDTO, 0, len(pieOrder))
	for _, name := range pieOrder {
		resp.Pie = append(resp.Pie, dto.PieSliceDTO{Name: name, Quantity: pieTotals[name]})
	}

	return resp, nil
}

func filterLines(lines []*entity.InventoryLineWithProduct, req dto.InventoryReportRequest) []*entity.InventoryLineWithProduct {
	out := make([]*entity.InventoryLineWithProduct, 0, len(lines))
	for _, l := range lines {
		if req.ProductID != "" && req.ProductID != "all" && l.ProductID != req.ProductID {
			continue
		}
		if req.MinQuantity != nil && l.Quantity < *req.MinQuantity {
			continue
		}
		if req.MaxQuantity != nil && l.Quantity > *req.MaxQuantity {
			continue
		}
		out = append(out, l)
	}
	return out
}

func sortLines(lines []*entity.InventoryLineWithProduct, sortBy string) {
	if sortBy == "name" {
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[i].ProductName < lines[j].ProductName
		})
		return
	}
	// default: cantidad descendente
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Quantity > lines[j].Quantity
	})
}
