// Package movements compone consultas filtradas y paginadas sobre el ledger
// de movimientos (la pestaña de análisis y el historial reciente).
package movements

import (
	"context"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	domInv "github.com/jhoicas/colorstock-api/internal/domain/inventory"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// Movimientos que muestra el historial reciente.
const recentLimit = 50

// ViewCache caché opcional de páginas ya consultadas. Un fallo del caché
// nunca es fatal: la implementación degrada a lectura directa de DB.
type ViewCache interface {
	GetMovementPage(ctx context.Context, key string) (*dto.MovementListResponse, bool)
	SetMovementPage(ctx context.Context, key string, page *dto.MovementListResponse)
}

// ListMovementsUseCase traduce los filtros del usuario en una consulta
// filtrada, ordenada (movement_date DESC) y paginada, con resumen derivado.
type ListMovementsUseCase struct {
	movRepo repository.MovementRepository
	cache   ViewCache // nil = sin caché
}

// NewListMovementsUseCase construye el caso de uso. cache puede ser nil.
func NewListMovementsUseCase(movRepo repository.MovementRepository, cache ViewCache) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo, cache: cache}
}

// List ejecuta la consulta. Devuelve filas, total, página, total de páginas
// (ceil(total/limit)) y el resumen estadístico del conjunto visible.
func (uc *ListMovementsUseCase) List(ctx context.Context, f Filters) (*dto.MovementListResponse, error) {
	f = f.Normalized()

	key := f.CacheKey()
	if uc.cache != nil {
		if page, ok := uc.cache.GetMovementPage(ctx, key); ok {
			return page, nil
		}
	}

	repoFilter, err := f.ToRepoFilter()
	if err != nil {
		return nil, err
	}

	rows, err := uc.movRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + f.Limit - 1) / f.Limit
	}

	resp := &dto.MovementListResponse{
		Rows:       toMovementResponses(rows),
		TotalCount: total,
		Page:       f.Page,
		TotalPages: totalPages,
		Limit:      f.Limit,
		Summary:    toSummaryDTO(domInv.Summarize(rows)),
	}

	if uc.cache != nil {
		uc.cache.SetMovementPage(ctx, key, resp)
	}
	return resp, nil
}

// Recent devuelve los últimos movimientos (movement_date DESC) para el
// historial de la pestaña principal.
func (uc *ListMovementsUseCase) Recent(ctx context.Context) ([]dto.MovementResponse, error) {
	rows, err := uc.movRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(rows), nil
}

func toMovementResponses(rows []*entity.MovementWithDetails) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.MovementResponse{
			ID:           m.ID,
			InventoryID:  m.InventoryID,
			SKU:          m.SKU,
			ProductName:  m.ProductName,
			Color:        m.Color,
			Quantity:     m.Quantity,
			Type:         m.Type,
			Notes:        m.Notes,
			MovementDate: m.MovementDate,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out
}

func toSummaryDTO(s domInv.Summary) dto.MovementSummaryDTO {
	return dto.MovementSummaryDTO{
		TotalIn:            s.TotalIn,
		TotalOut:           s.TotalOut,
		NetChange:          s.NetChange,
		Transactions:       s.Transactions,
		TopProduct:         s.TopProduct,
		AvgTransactionSize: s.AvgTransactionSize,
	}
}
