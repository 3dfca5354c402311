package repository

import (
	"context"
	"time"

	"github.com/jhoicas/colorstock-api/internal/domain/entity"
)

// MovementFilter criterios de consulta sobre el ledger de movimientos.
// Campos en cero significan "sin filtro".
type MovementFilter struct {
	Type      string // IN | OUT | "" (todos)
	ProductID string // "" = todos
	DateFrom  *time.Time
	DateTo    *time.Time
	Notes     string // substring case-insensitive sobre notes
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia para el ledger.
// Append-only: no existe Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List devuelve los movimientos que cumplen el filtro con su línea y
	// producto, ordenados por movement_date DESC.
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementWithDetails, error)
	// Count devuelve el total de filas que cumplen el filtro (ignora Limit/Offset).
	Count(ctx context.Context, filter MovementFilter) (int, error)
	// ListRecent devuelve los últimos movimientos por movement_date DESC.
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithDetails, error)
}
