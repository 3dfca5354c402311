package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/colorstock-api/internal/application/analytics"
	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
)

// fakeInventoryRepo devuelve un conjunto fijo de líneas con producto.
type fakeInventoryRepo struct {
	lines []*entity.InventoryLineWithProduct
}

func (r *fakeInventoryRepo) Create(_ context.Context, _ *entity.InventoryLine) error { return nil }
func (r *fakeInventoryRepo) GetByID(_ context.Context, _ string) (*entity.InventoryLine, error) {
	return nil, nil
}
func (r *fakeInventoryRepo) GetForUpdate(_ context.Context, _ string) (*entity.InventoryLine, error) {
	return nil, nil
}
func (r *fakeInventoryRepo) UpdateQuantity(_ context.Context, _ string, _ int) error { return nil }
func (r *fakeInventoryRepo) ListWithProduct(_ context.Context, _ string) ([]*entity.InventoryLineWithProduct, error) {
	return r.lines, nil
}

func line(id, productID, name, color string, qty int) *entity.InventoryLineWithProduct {
	return &entity.InventoryLineWithProduct{
		InventoryLine: entity.InventoryLine{ID: id, ProductID: productID, Color: color, Quantity: qty},
		SKU:           "SKU-" + productID,
		ProductName:   name,
	}
}

func testLines() []*entity.InventoryLineWithProduct {
	return []*entity.InventoryLineWithProduct{
		line("l1", "p1", "Camiseta", "Rojo", 12),
		line("l2", "p1", "Camiseta", "Azul", 3),
		line("l3", "p2", "Pantalón", "Negro", 0),
		line("l4", "p3", "Abrigo", "Gris", 40),
	}
}

// Orden por defecto: cantidad descendente.
func TestReport_OrdenPorCantidadDesc(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeInventoryRepo{lines: testLines()})

	out, err := uc.GetInventoryReport(context.Background(), dto.InventoryReportRequest{})
	require.NoError(t, err)

	require.Len(t, out.Rows, 4)
	assert.Equal(t, []int{40, 12, 3, 0}, []int{
		out.Rows[0].Quantity, out.Rows[1].Quantity, out.Rows[2].Quantity, out.Rows[3].Quantity,
	})
}

// sort_by=name ordena por nombre de producto ascendente.
func TestReport_OrdenPorNombre(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeInventoryRepo{lines: testLines()})

	out, err := uc.GetInventoryReport(context.Background(), dto.InventoryReportRequest{SortBy: "name"})
	require.NoError(t, err)

	assert.Equal(t, "Abrigo", out.Rows[0].ProductName)
	assert.Equal(t, "Camiseta", out.Rows[1].ProductName)
	assert.Equal(t, "Pantalón", out.Rows[3].ProductName)
}

// Filtro por producto y por rango de cantidad.
func TestReport_Filtros(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeInventoryRepo{lines: testLines()})
	ctx := context.Background()

	out, err := uc.GetInventoryReport(ctx, dto.InventoryReportRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2, "solo las líneas del producto p1")

	minQ, maxQ := 1, 15
	out, err = uc.GetInventoryReport(ctx, dto.InventoryReportRequest{MinQuantity: &minQ, MaxQuantity: &maxQ})
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	for _, r := range out.Rows {
		assert.GreaterOrEqual(t, r.Quantity, 1)
		assert.LessOrEqual(t, r.Quantity, 15)
	}

	// "all" equivale a sin filtro de producto
	out, err = uc.GetInventoryReport(ctx, dto.InventoryReportRequest{ProductID: "all"})
	require.NoError(t, err)
	assert.Len(t, out.Rows, 4)
}

// Barras: una por línea con etiqueta "Producto (Color)".
// Torta: agregado por producto sumando sus colores.
func TestReport_Graficas(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeInventoryRepo{lines: testLines()})

	out, err := uc.GetInventoryReport(context.Background(), dto.InventoryReportRequest{SortBy: "name"})
	require.NoError(t, err)

	require.Len(t, out.Bars, 4)
	assert.Equal(t, "Abrigo (Gris)", out.Bars[0].Name)

	require.Len(t, out.Pie, 3, "una porción por producto")
	pieByName := map[string]int{}
	for _, p := range out.Pie {
		pieByName[p.Name] = p.Quantity
	}
	assert.Equal(t, 15, pieByName["Camiseta"], "suma de las variantes Rojo+Azul")
	assert.Equal(t, 0, pieByName["Pantalón"])
	assert.Equal(t, 40, pieByName["Abrigo"])
}

// Totales: items, cantidad total, stock bajo y agotados del conjunto filtrado.
func TestReport_Totales(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeInventoryRepo{lines: testLines()})

	out, err := uc.GetInventoryReport(context.Background(), dto.InventoryReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Stats.TotalItems)
	assert.Equal(t, 55, out.Stats.TotalQuantity)
	assert.Equal(t, 1, out.Stats.LowStockItems, "solo la línea con 3 unidades")
	assert.Equal(t, 1, out.Stats.OutOfStock, "solo la línea con 0 unidades")
}

// Inventario vacío: reporte con colecciones vacías, no nil panic.
func TestReport_InventarioVacio(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeInventoryRepo{})

	out, err := uc.GetInventoryReport(context.Background(), dto.InventoryReportRequest{})
	require.NoError(t, err)

	assert.Empty(t, out.Rows)
	assert.Empty(t, out.Bars)
	assert.Empty(t, out.Pie)
	assert.Zero(t, out.Stats.TotalItems)
}
