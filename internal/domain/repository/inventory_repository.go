package repository

import (
	"context"

	"github.com/jhoicas/colorstock-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para líneas de inventario.
// Quantity solo se modifica vía UpdateQuantity, dentro de la transacción del
// motor de movimientos.
type InventoryRepository interface {
	Create(ctx context.Context, line *entity.InventoryLine) error
	GetByID(ctx context.Context, id string) (*entity.InventoryLine, error)
	// GetForUpdate obtiene la línea bloqueando la fila (SELECT FOR UPDATE)
	// para cerrar la carrera lectura-escritura del chequeo de stock.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryLine, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// ListWithProduct lista las líneas con su producto, created_at DESC.
	// search filtra por substring (case-insensitive) sobre sku, nombre o color;
	// vacío devuelve todo.
	ListWithProduct(ctx context.Context, search string) ([]*entity.InventoryLineWithProduct, error)
}
