package inventory_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/inventory"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// fakeMaterialRepo es un doble en memoria del puerto de materiales.
type fakeMaterialRepo struct {
	nextID int64
	items  map[int64]entity.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{items: make(map[int64]entity.Material)}
}

func (r *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	for _, existing := range r.items {
		if existing.Code == m.Code {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	m.ID = r.nextID
	r.items[m.ID] = *m
	return nil
}

// CreateBulk replica el contrato todo-o-nada del repositorio real: si una fila
// falla, ninguna del lote queda persistida.
func (r *fakeMaterialRepo) CreateBulk(ctx context.Context, materials []*entity.Material) error {
	snapshot := make(map[int64]entity.Material, len(r.items))
	for id, m := range r.items {
		snapshot[id] = m
	}
	prevID := r.nextID

	for _, m := range materials {
		if err := r.Create(ctx, m); err != nil {
			r.items = snapshot
			r.nextID = prevID
			return err
		}
	}
	return nil
}

func (r *fakeMaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMaterialRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Material, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeMaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(r.items))
	for _, m := range r.items {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	if _, ok := r.items[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[m.ID] = *m
	return nil
}

func (r *fakeMaterialRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	m, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Stock = stock
	r.items[id] = m
	return nil
}

func (r *fakeMaterialRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func validInput() inventory.MaterialInput {
	return inventory.MaterialInput{
		Code:     "M-001",
		Name:     "Rodamiento 6204",
		Location: "A-01",
		Stock:    10,
		Type:     entity.MaterialTypeERSA,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AplicaValoresPorDefecto(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := inventory.NewUseCase(repo)

	material, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "UN", material.Unit, "unidad por defecto")
	assert.Equal(t, 5, material.ReorderPoint, "punto de pedido por defecto")
	assert.NotZero(t, material.ID)
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := inventory.NewUseCase(repo)

	casos := []inventory.MaterialInput{
		func() inventory.MaterialInput { in := validInput(); in.Code = "  "; return in }(),
		func() inventory.MaterialInput { in := validInput(); in.Name = ""; return in }(),
		func() inventory.MaterialInput { in := validInput(); in.Type = "OTRO"; return in }(),
		func() inventory.MaterialInput { in := validInput(); in.Stock = -1; return in }(),
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, repo.items, "ninguna alta inválida debe persistirse")
}

func TestCreateBulk_FilaInvalidaAbortaElLote(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := inventory.NewUseCase(repo)

	bad := validInput()
	bad.Type = "XXXX"
	_, err := uc.CreateBulk(context.Background(), []inventory.MaterialInput{validInput(), bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items, "el lote se valida completo antes de insertar")
}

func TestCreateBulk_CodigoDuplicadoNoPersisteNingunaFila(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := inventory.NewUseCase(repo)

	seeded, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	nuevo := validInput()
	nuevo.Code = "M-002"
	otro := validInput()
	otro.Code = "M-003"
	repetido := validInput() // mismo código M-001 que el material ya existente

	_, err = uc.CreateBulk(context.Background(), []inventory.MaterialInput{nuevo, otro, repetido})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.Len(t, repo.items, 1, "una fila duplicada a mitad del archivo no deja prefijo persistido")
	assert.Equal(t, seeded.Code, repo.items[seeded.ID].Code)
}

func TestCreateBulk_LoteVacio(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	_, err := uc.CreateBulk(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NoExiste(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	_, err := uc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado con filtros
// ──────────────────────────────────────────────────────────────────────────────

func seedCatalog(t *testing.T, uc *inventory.UseCase) {
	t.Helper()
	inputs := []inventory.MaterialInput{
		{Code: "M-1", Name: "Tornillo métrico", Location: "A-01", Stock: 0, Type: entity.MaterialTypeUNBW, ReorderPoint: 10},
		{Code: "M-2", Name: "Rodamiento", Location: "A-02", Stock: 3, Type: entity.MaterialTypeERSA, ReorderPoint: 10},
		{Code: "M-3", Name: "Correa dentada", Location: "B-01", Stock: 8, Type: entity.MaterialTypeUNBW, ReorderPoint: 10},
		{Code: "M-4", Name: "Filtro de aire", Location: "B-02", Stock: 50, Type: entity.MaterialTypeUNBW, ReorderPoint: 10},
	}
	for _, in := range inputs {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestList_BusquedaIgnoraMayusculasYTildes(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	seedCatalog(t, uc)

	out, err := uc.List(context.Background(), inventory.Filter{Query: "TORNILLO METRICO"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "M-1", out[0].Code)

	out, err = uc.List(context.Background(), inventory.Filter{Query: "fíltro"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "M-4", out[0].Code)
}

func TestList_BusquedaCubreCodigoYUbicacion(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	seedCatalog(t, uc)

	out, err := uc.List(context.Background(), inventory.Filter{Query: "B-0"})
	require.NoError(t, err)
	assert.Len(t, out, 2, "la búsqueda general también matchea la ubicación")
}

func TestList_NivelesDeStock(t *testing.T) {
	// Con punto de pedido 10: crítico 1..5, bajo 6..10, cero = 0.
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	seedCatalog(t, uc)

	zero, err := uc.List(context.Background(), inventory.Filter{StockLevel: inventory.StockLevelZero})
	require.NoError(t, err)
	require.Len(t, zero, 1)
	assert.Equal(t, "M-1", zero[0].Code)

	critical, err := uc.List(context.Background(), inventory.Filter{StockLevel: inventory.StockLevelCritical})
	require.NoError(t, err)
	require.Len(t, critical, 1)
	assert.Equal(t, "M-2", critical[0].Code)

	low, err := uc.List(context.Background(), inventory.Filter{StockLevel: inventory.StockLevelLow})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "M-3", low[0].Code)

	all, err := uc.List(context.Background(), inventory.Filter{StockLevel: inventory.StockLevelAll})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y stock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ConservaIDYFechaDeCreacion(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	created, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Rodamiento 6205"
	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Rodamiento 6205", updated.Name)
}

func TestUpdateStock_RechazaNegativo(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	created, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.UpdateStock(context.Background(), created.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := uc.UpdateStock(context.Background(), created.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock, "el stock sí puede fijarse en cero")
}

func TestDelete_IndicaSiAlgoFueBorrado(t *testing.T) {
	uc := inventory.NewUseCase(newFakeMaterialRepo())
	created, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
