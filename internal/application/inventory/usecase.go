package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
	"github.com/josehoe716-wq/App-bodega-final/pkg/search"
)

// Valores por defecto de umbrales cuando el material no los define.
const defaultReorderPoint = 5

// UseCase administra el catálogo de materiales: altas, importación masiva,
// edición, stock y búsqueda con filtros.
type UseCase struct {
	materialRepo repository.MaterialRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(materialRepo repository.MaterialRepository) *UseCase {
	return &UseCase{materialRepo: materialRepo}
}

// MaterialInput alta manual o fila de importación.
type MaterialInput struct {
	Code         string
	Name         string
	Location     string
	Stock        int
	Unit         string
	Type         string
	ReorderPoint int
	MaxLevel     int
	Category     string
}

// Filter criterios del listado de inventario.
type Filter struct {
	Query      string // busca en nombre, código y ubicación a la vez
	Name       string
	Code       string
	Location   string
	StockLevel string // all | low | critical | zero
}

// Niveles de stock para filtrado.
const (
	StockLevelAll      = "all"
	StockLevelLow      = "low"
	StockLevelCritical = "critical"
	StockLevelZero     = "zero"
)

// Create valida y persiste un material nuevo.
func (uc *UseCase) Create(ctx context.Context, input MaterialInput) (*entity.Material, error) {
	material, err := buildMaterial(input)
	if err != nil {
		return nil, err
	}
	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// CreateBulk valida todo el lote antes de persistir; una fila inválida aborta
// la importación completa.
func (uc *UseCase) CreateBulk(ctx context.Context, inputs []MaterialInput) ([]*entity.Material, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	materials := make([]*entity.Material, 0, len(inputs))
	for _, input := range inputs {
		material, err := buildMaterial(input)
		if err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}
	if err := uc.materialRepo.CreateBulk(ctx, materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// Get obtiene un material por id.
func (uc *UseCase) Get(ctx context.Context, id int64) (*entity.Material, error) {
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrMaterialNotFound
	}
	return material, nil
}

// List devuelve los materiales que pasan el filtro. La búsqueda de texto
// ignora mayúsculas y tildes; los niveles de stock siguen los umbrales del
// punto de pedido.
func (uc *UseCase) List(ctx context.Context, filter Filter) ([]*entity.Material, error) {
	all, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Material
	for _, m := range all {
		if matchesFilter(m, filter) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Update reemplaza los campos editables del material.
func (uc *UseCase) Update(ctx context.Context, id int64, input MaterialInput) (*entity.Material, error) {
	existing, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := buildMaterial(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := uc.materialRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStock fija el stock del material (edición directa del administrador).
func (uc *UseCase) UpdateStock(ctx context.Context, id int64, stock int) (*entity.Material, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.materialRepo.UpdateStock(ctx, id, stock); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete elimina un material del catálogo e indica si algo fue borrado.
// Las salidas históricas conservan sus fotos: no referencian el catálogo.
func (uc *UseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.materialRepo.Delete(ctx, id)
}

func buildMaterial(input MaterialInput) (*entity.Material, error) {
	if strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMaterialType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	reorder := input.ReorderPoint
	if reorder <= 0 {
		reorder = defaultReorderPoint
	}
	unit := input.Unit
	if unit == "" {
		unit = "UN"
	}
	now := time.Now()
	return &entity.Material{
		Code:         strings.TrimSpace(input.Code),
		Name:         strings.TrimSpace(input.Name),
		Location:     strings.TrimSpace(input.Location),
		Stock:        input.Stock,
		Unit:         unit,
		Type:         input.Type,
		ReorderPoint: reorder,
		MaxLevel:     input.MaxLevel,
		Category:     input.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func matchesFilter(m *entity.Material, f Filter) bool {
	if f.Query != "" {
		if !search.Matches(m.Name, f.Query) &&
			!search.Matches(m.Code, f.Query) &&
			!search.Matches(m.Location, f.Query) {
			return false
		}
	}
	if !search.Matches(m.Name, f.Name) ||
		!search.Matches(m.Code, f.Code) ||
		!search.Matches(m.Location, f.Location) {
		return false
	}
	return matchesStockLevel(m, f.StockLevel)
}

// matchesStockLevel clasifica el stock contra el punto de pedido:
// crítico <= mitad del punto de pedido < bajo <= punto de pedido.
func matchesStockLevel(m *entity.Material, level string) bool {
	reorder := m.ReorderPoint
	if reorder <= 0 {
		reorder = defaultReorderPoint
	}
	critical := reorder / 2
	switch level {
	case "", StockLevelAll:
		return true
	case StockLevelLow:
		return m.Stock > 0 && m.Stock > critical && m.Stock <= reorder
	case StockLevelCritical:
		return m.Stock > 0 && m.Stock <= critical
	case StockLevelZero:
		return m.Stock == 0
	}
	return true
}
