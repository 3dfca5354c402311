package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// Columnas del join movimiento + línea + producto, compartidas por List y ListRecent.
const movementSelect = `
		SELECT m.id, m.inventory_id, m.quantity, m.movement_type, m.notes, m.movement_date, m.created_at,
		       i.color, p.sku, p.name
		FROM stock_movements m
		JOIN inventory i ON i.id = m.inventory_id
		JOIN products p ON p.id = i.product_id`

// MovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Append-only: el repositorio no expone Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anexa un movimiento al ledger.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, inventory_id, quantity, movement_type, notes, movement_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	notes := (*string)(nil)
	if movement.Notes != "" {
		notes = &movement.Notes
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.InventoryID, movement.Quantity, movement.Type,
		notes, movement.MovementDate, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// movementWhere construye la cláusula WHERE dinámica del filtro y sus argumentos.
func movementWhere(f repository.MovementFilter) (string, []any) {
	where := ""
	args := []any{}
	and := func(cond string) {
		if where == "" {
			where = "\n\t\tWHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if f.Type != "" {
		args = append(args, f.Type)
		and(fmt.Sprintf("m.movement_type = $%d", len(args)))
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		and(fmt.Sprintf("i.product_id = $%d", len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		and(fmt.Sprintf("m.movement_date >= $%d", len(args)))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		and(fmt.Sprintf("m.movement_date <= $%d", len(args)))
	}
	if f.Notes != "" {
		args = append(args, f.Notes)
		and(fmt.Sprintf("m.notes ILIKE '%%' || $%d || '%%'", len(args)))
	}
	return where, args
}

// List devuelve los movimientos que cumplen el filtro con línea y producto,
// ordenados por movement_date DESC, con límite y offset.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementWithDetails, error) {
	where, args := movementWhere(f)
	query := movementSelect + where + fmt.Sprintf(`
		ORDER BY m.movement_date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	return r.queryMovements(ctx, query, args...)
}

// Count devuelve el total de filas que cumplen el filtro (ignora Limit/Offset).
func (r *MovementRepo) Count(ctx context.Context, f repository.MovementFilter) (int, error) {
	where, args := movementWhere(f)
	query := `
		SELECT COUNT(*)
		FROM stock_movements m
		JOIN inventory i ON i.id = m.inventory_id
		JOIN products p ON p.id = i.product_id` + where

	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// ListRecent devuelve los últimos movimientos por movement_date DESC.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithDetails, error) {
	query := movementSelect + `
		ORDER BY m.movement_date DESC LIMIT $1`
	return r.queryMovements(ctx, query, limit)
}

func (r *MovementRepo) queryMovements(ctx context.Context, query string, args ...any) ([]*entity.MovementWithDetails, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithDetails
	for rows.Next() {
		var m entity.MovementWithDetails
		var notes *string
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.Quantity, &m.Type, &notes,
			&m.MovementDate, &m.CreatedAt, &m.Color, &m.SKU, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
