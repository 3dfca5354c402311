package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/domain"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	domInv "github.com/jhoicas/colorstock-api/internal/domain/inventory"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// InventoryViewCache cachea el listado de inventario por término de búsqueda.
// Implementación opcional; nil desactiva el caché.
type InventoryViewCache interface {
	GetInventoryList(ctx context.Context, key string) (*dto.InventoryListResponse, bool)
	SetInventoryList(ctx context.Context, key string, list *dto.InventoryListResponse)
	InvalidateInventory(ctx context.Context)
}

// InventoryUseCase casos de uso de líneas de inventario (producto + color).
// Crear una línea no mueve stock: nace en 0 y se alimenta vía movimientos.
type InventoryUseCase struct {
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
	cache       InventoryViewCache
}

// NewInventoryUseCase construye el caso de uso. cache puede ser nil.
func NewInventoryUseCase(invRepo repository.InventoryRepository, productRepo repository.ProductRepository, cache InventoryViewCache) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo, productRepo: productRepo, cache: cache}
}

// Create crea una variante de color para un producto existente, con cantidad 0.
// La unicidad (producto, color) es convención de la UI, no la impone el sistema.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryLineRequest) (*dto.InventoryLineResponse, error) {
	color := strings.TrimSpace(in.Color)
	if in.ProductID == "" || color == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	line := &entity.InventoryLine{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Color:     color,
		Quantity:  0,
		CreatedAt: time.Now(),
	}
	if err := uc.invRepo.Create(ctx, line); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.InvalidateInventory(ctx)
	}

	return &dto.InventoryLineResponse{
		ID:          line.ID,
		ProductID:   product.ID,
		SKU:         product.SKU,
		ProductName: product.Name,
		Color:       line.Color,
		Quantity:    line.Quantity,
		Status:      domInv.Status(line.Quantity),
		CreatedAt:   line.CreatedAt,
	}, nil
}

// List lista las líneas con su producto y estado, created_at DESC.
// search filtra por sku, nombre de producto o color (el buscador del
// formulario de movimientos).
func (uc *InventoryUseCase) List(ctx context.Context, search string) (*dto.InventoryListResponse, error) {
	search = strings.TrimSpace(search)
	if uc.cache != nil {
		if cached, ok := uc.cache.GetInventoryList(ctx, search); ok {
			return cached, nil
		}
	}

	lines, err := uc.invRepo.ListWithProduct(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.InventoryLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			SKU:         l.SKU,
			ProductName: l.ProductName,
			Color:       l.Color,
			Quantity:    l.Quantity,
			Status:      domInv.Status(l.Quantity),
			CreatedAt:   l.CreatedAt,
		})
	}
	out := &dto.InventoryListResponse{Items: items, Total: len(items)}
	if uc.cache != nil {
		uc.cache.SetInventoryList(ctx, search, out)
	}
	return out, nil
}
