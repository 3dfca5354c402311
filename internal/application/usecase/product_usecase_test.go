package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/application/usecase"
	"github.com/jhoicas/colorstock-api/internal/domain"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
)

// fakeProductRepo catálogo en memoria indexado por ID y por SKU.
type fakeProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}, bySKU: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.byID[p.ID] = p
	r.bySKU[p.SKU] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.bySKU[sku], nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

// fakeLineRepo registra las líneas creadas.
type fakeLineRepo struct {
	created []*entity.InventoryLine
}

func (r *fakeLineRepo) Create(_ context.Context, l *entity.InventoryLine) error {
	r.created = append(r.created, l)
	return nil
}
func (r *fakeLineRepo) GetByID(_ context.Context, _ string) (*entity.InventoryLine, error) {
	return nil, nil
}
func (r *fakeLineRepo) GetForUpdate(_ context.Context, _ string) (*entity.InventoryLine, error) {
	return nil, nil
}
func (r *fakeLineRepo) UpdateQuantity(_ context.Context, _ string, _ int) error { return nil }
func (r *fakeLineRepo) ListWithProduct(_ context.Context, _ string) ([]*entity.InventoryLineWithProduct, error) {
	return nil, nil
}

// El SKU se normaliza a mayúsculas y sin espacios alrededor.
func TestProductCreate_NormalizaSKU(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "  cam-001 ", Name: "Camiseta"})
	require.NoError(t, err)
	assert.Equal(t, "CAM-001", out.SKU)
	assert.NotEmpty(t, out.ID)
}

// Dos productos con el mismo SKU (en distinta capitalización) → ErrDuplicate.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "CAM-001", Name: "Camiseta"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "cam-001", Name: "Otra camiseta"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// SKU o nombre vacíos → ErrInvalidInput.
func TestProductCreate_CamposVacios(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "", Name: "Camiseta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "CAM-001", Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente → ErrNotFound.
func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La línea de inventario nace con cantidad 0 y estado Out of Stock.
func TestInventoryCreate_NaceEnCero(t *testing.T) {
	products := newFakeProductRepo()
	lines := &fakeLineRepo{}
	productUC := usecase.NewProductUseCase(products)
	invUC := usecase.NewInventoryUseCase(lines, products, nil)
	ctx := context.Background()

	p, err := productUC.Create(ctx, dto.CreateProductRequest{SKU: "CAM-001", Name: "Camiseta"})
	require.NoError(t, err)

	out, err := invUC.Create(ctx, dto.CreateInventoryLineRequest{ProductID: p.ID, Color: "Rojo"})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Quantity, "la línea nace sin stock")
	assert.Equal(t, "Out of Stock", out.Status)
	assert.Equal(t, "CAM-001", out.SKU)
	require.Len(t, lines.created, 1)
	assert.Equal(t, 0, lines.created[0].Quantity)
}

// Crear una línea para un producto inexistente → ErrNotFound.
func TestInventoryCreate_ProductoInexistente(t *testing.T) {
	invUC := usecase.NewInventoryUseCase(&fakeLineRepo{}, newFakeProductRepo(), nil)

	_, err := invUC.Create(context.Background(), dto.CreateInventoryLineRequest{ProductID: "fantasma", Color: "Rojo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Color vacío → ErrInvalidInput.
func TestInventoryCreate_ColorVacio(t *testing.T) {
	invUC := usecase.NewInventoryUseCase(&fakeLineRepo{}, newFakeProductRepo(), nil)

	_, err := invUC.Create(context.Background(), dto.CreateInventoryLineRequest{ProductID: "p1", Color: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
