package exits

import (
	"context"
	"sort"
	"strings"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

// HistoryUseCase consulta y corrige el historial de salidas (individuales y
// por carrito) fuera de la ruta transaccional de creación.
type HistoryUseCase struct {
	exitRepo     repository.MaterialExitRepository
	cartRepo     repository.CartExitRepository
	registryRepo repository.RegistryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	exitRepo repository.MaterialExitRepository,
	cartRepo repository.CartExitRepository,
	registryRepo repository.RegistryRepository,
) *HistoryUseCase {
	return &HistoryUseCase{exitRepo: exitRepo, cartRepo: cartRepo, registryRepo: registryRepo}
}

// UpdateInput corrección administrativa parcial de una salida.
type UpdateInput struct {
	PersonName     *string
	PersonLastName *string
	Area           *string
	Ceco           *string
	SapCode        *string
	WorkOrder      *string
	Quantity       *int
}

// ListExits devuelve todas las salidas individuales, más recientes primero.
func (uc *HistoryUseCase) ListExits(ctx context.Context) ([]*entity.MaterialExit, error) {
	return uc.exitRepo.List(ctx)
}

// ListExitsByMaterial devuelve las salidas de un material.
func (uc *HistoryUseCase) ListExitsByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialExit, error) {
	return uc.exitRepo.ListByMaterial(ctx, materialID)
}

// GetExit obtiene una salida individual por id.
func (uc *HistoryUseCase) GetExit(ctx context.Context, id int64) (*entity.MaterialExit, error) {
	exit, err := uc.exitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exit == nil {
		return nil, domain.ErrNotFound
	}
	return exit, nil
}

// ListCartExits devuelve todas las salidas por carrito, más recientes primero.
func (uc *HistoryUseCase) ListCartExits(ctx context.Context) ([]*entity.CartExit, error) {
	return uc.cartRepo.List(ctx)
}

// GetCartExit obtiene una salida por carrito por id.
func (uc *HistoryUseCase) GetCartExit(ctx context.Context, id int64) (*entity.CartExit, error) {
	cart, err := uc.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrNotFound
	}
	return cart, nil
}

// ListMovements mezcla ambas colecciones en la unión etiquetada, ordenada por
// fecha de creación descendente.
func (uc *HistoryUseCase) ListMovements(ctx context.Context) ([]entity.Movement, error) {
	exits, err := uc.exitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	carts, err := uc.cartRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	movements := make([]entity.Movement, 0, len(exits)+len(carts))
	for _, e := range exits {
		movements = append(movements, entity.Movement{Kind: entity.MovementKindSingle, Single: e})
	}
	for _, c := range carts {
		movements = append(movements, entity.Movement{Kind: entity.MovementKindCart, Cart: c})
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt().After(movements[j].CreatedAt())
	})
	return movements, nil
}

// UpdateExit aplica una corrección parcial a una salida individual. Los campos
// provistos se revalidan (solicitante y área no vacíos, cantidad positiva);
// el stock restante capturado nunca se recalcula.
func (uc *HistoryUseCase) UpdateExit(ctx context.Context, id int64, input UpdateInput) (*entity.MaterialExit, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}
	exit, err := uc.exitRepo.Update(ctx, id, toExitUpdate(input))
	if err != nil {
		return nil, err
	}
	if exit == nil {
		return nil, domain.ErrNotFound
	}
	return exit, nil
}

// UpdateCartExit aplica una corrección parcial a una salida por carrito
// (la cantidad corrige el total de unidades).
func (uc *HistoryUseCase) UpdateCartExit(ctx context.Context, id int64, input UpdateInput) (*entity.CartExit, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}
	cart, err := uc.cartRepo.Update(ctx, id, toExitUpdate(input))
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrNotFound
	}
	return cart, nil
}

// DeleteExit elimina una salida individual e indica si algo fue borrado.
// No hay compensación de stock: borrar el registro no devuelve unidades.
func (uc *HistoryUseCase) DeleteExit(ctx context.Context, id int64) (bool, error) {
	return uc.exitRepo.Delete(ctx, id)
}

// DeleteCartExit elimina una salida por carrito. El código de registro emitido
// no se libera ni se reutiliza.
func (uc *HistoryUseCase) DeleteCartExit(ctx context.Context, id int64) (bool, error) {
	return uc.cartRepo.Delete(ctx, id)
}

// CurrentRegistryCode devuelve el último código emitido, formateado.
func (uc *HistoryUseCase) CurrentRegistryCode(ctx context.Context) (string, error) {
	code, err := uc.registryRepo.Current(ctx)
	if err != nil {
		return "", err
	}
	return FormatRegistryCode(code), nil
}

func validateUpdate(input UpdateInput) error {
	if blank(input.PersonName) || blank(input.PersonLastName) || blank(input.Area) {
		return domain.ErrInvalidInput
	}
	if input.Quantity != nil && *input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// blank detecta un campo provisto pero vacío; nil (no provisto) es válido.
func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

func toExitUpdate(input UpdateInput) repository.ExitUpdate {
	return repository.ExitUpdate{
		PersonName:     input.PersonName,
		PersonLastName: input.PersonLastName,
		Area:           input.Area,
		Ceco:           input.Ceco,
		SapCode:        input.SapCode,
		WorkOrder:      input.WorkOrder,
		Quantity:       input.Quantity,
	}
}
