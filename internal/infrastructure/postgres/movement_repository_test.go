package postgres_test

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
	"github.com/jhoicas/colorstock-api/internal/infrastructure/postgres"
)

var movementColumns = []string{
	"id", "inventory_id", "quantity", "movement_type", "notes",
	"movement_date", "created_at", "color", "sku", "name",
}

func movementRow(rows *pgxmock.Rows, id string, qty int, typ string, notes *string, at time.Time) *pgxmock.Rows {
	return rows.AddRow(id, "linea-1", qty, typ, notes, at, at, "Rojo", "CAM-001", "Camiseta")
}

// Sin filtros: solo LIMIT y OFFSET como argumentos.
func TestMovementRepo_List_SinFiltros(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewMovementRepository(mock)

	now := time.Now()
	rows := pgxmock.NewRows(movementColumns)
	movementRow(rows, "m-1", 10, "IN", nil, now)
	movementRow(rows, "m-2", 3, "OUT", nil, now.Add(-time.Hour))

	mock.ExpectQuery(`ORDER BY m\.movement_date DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), repository.MovementFilter{Limit: 50, Offset: 0})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m-1", got[0].ID)
	assert.Equal(t, "CAM-001", got[0].SKU)
	assert.Equal(t, "Camiseta", got[0].ProductName)
	assert.Empty(t, got[0].Notes, "notes NULL se traduce a vacío")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Filtro completo: las condiciones se numeran en orden y los args coinciden.
func TestMovementRepo_List_FiltroCompleto(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewMovementRepository(mock)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 15, 23, 59, 59, 999999999, time.Local)

	mock.ExpectQuery(`WHERE m\.movement_type = \$1 AND i\.product_id = \$2 AND m\.movement_date >= \$3 AND m\.movement_date <= \$4 AND m\.notes ILIKE '%' \|\| \$5 \|\| '%'`).
		WithArgs("OUT", "prod-1", from, to, "venta", 100, 100).
		WillReturnRows(pgxmock.NewRows(movementColumns))

	got, err := repo.List(context.Background(), repository.MovementFilter{
		Type:      "OUT",
		ProductID: "prod-1",
		DateFrom:  &from,
		DateTo:    &to,
		Notes:     "venta",
		Limit:     100,
		Offset:    100,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Count usa las mismas condiciones que List, sin LIMIT/OFFSET.
func TestMovementRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewMovementRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("IN").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.Count(context.Background(), repository.MovementFilter{Type: "IN", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ListRecent: un solo argumento, el límite.
func TestMovementRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewMovementRepository(mock)

	now := time.Now()
	notes := "reposición"
	rows := pgxmock.NewRows(movementColumns)
	movementRow(rows, "m-9", 7, "IN", &notes, now)

	mock.ExpectQuery(`ORDER BY m\.movement_date DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(rows)

	got, err := repo.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "reposición", got[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Create: las notas vacías se insertan como NULL.
func TestMovementRepo_Create_NotasVaciasComoNull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewMovementRepository(mock)

	now := time.Now()
	mov := &entity.StockMovement{
		ID:           "m-1",
		InventoryID:  "linea-1",
		Quantity:     5,
		Type:         entity.MovementTypeIN,
		Notes:        "",
		MovementDate: now,
		CreatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO stock_movements`).
		WithArgs("m-1", "linea-1", 5, "IN", (*string)(nil), now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), mov))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Create con notas: se pasa el puntero al texto.
func TestMovementRepo_Create_ConNotas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := postgres.NewMovementRepository(mock)

	now := time.Now()
	mov := &entity.StockMovement{
		ID:           "m-2",
		InventoryID:  "linea-1",
		Quantity:     2,
		Type:         entity.MovementTypeOUT,
		Notes:        "venta mostrador",
		MovementDate: now,
		CreatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO stock_movements`).
		WithArgs("m-2", "linea-1", 2, "OUT", &mov.Notes, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), mov))
	assert.NoError(t, mock.ExpectationsWereMet())
}
