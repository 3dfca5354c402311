package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una línea de inventario (nace con quantity 0).
func (r *InventoryRepo) Create(ctx context.Context, line *entity.InventoryLine) error {
	query := `
		INSERT INTO inventory (id, product_id, color, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, line.ID, line.ProductID, line.Color, line.Quantity, line.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory line: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID. Devuelve nil, nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryLine, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la línea bloqueando la fila (SELECT FOR UPDATE) para
// que el chequeo de cantidad y la escritura sean atómicos dentro de la tx.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryLine, error) {
	return r.get(ctx, id, true)
}

func (r *InventoryRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.InventoryLine, error) {
	query := `
		SELECT id, product_id, color, quantity, created_at
		FROM inventory WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var l entity.InventoryLine
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.ProductID, &l.Color, &l.Quantity, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory line: %w", err)
	}
	return &l, nil
}

// UpdateQuantity escribe la nueva cantidad de la línea.
// Solo lo invoca el motor de movimientos, dentro de su transacción.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// ListWithProduct lista las líneas con su producto, created_at DESC.
// search filtra por substring case-insensitive sobre sku, nombre o color.
func (r *InventoryRepo) ListWithProduct(ctx context.Context, search string) ([]*entity.InventoryLineWithProduct, error) {
	query := `
		SELECT i.id, i.product_id, i.color, i.quantity, i.created_at, p.sku, p.name
		FROM inventory i
		JOIN products p ON p.id = i.product_id`
	args := []any{}
	if search != "" {
		query += `
		WHERE p.sku ILIKE '%' || $1 || '%'
		   OR p.name ILIKE '%' || $1 || '%'
		   OR i.color ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += `
		ORDER BY i.created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLineWithProduct
	for rows.Next() {
		var l entity.InventoryLineWithProduct
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Color, &l.Quantity, &l.CreatedAt, &l.SKU, &l.ProductName); err != nil {
			return nil, fmt.Errorf("scan inventory line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
