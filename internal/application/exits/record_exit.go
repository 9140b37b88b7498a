package exits

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

// RecordExitUseCase registra retiros de material de forma transaccional:
// foto del material, decremento de stock y registro de la salida se confirman
// en una sola transacción con bloqueo de fila (SELECT FOR UPDATE).
type RecordExitUseCase struct {
	txRunner TxRunner
}

// NewRecordExitUseCase construye el caso de uso.
func NewRecordExitUseCase(txRunner TxRunner) *RecordExitUseCase {
	return &RecordExitUseCase{txRunner: txRunner}
}

// ExitInput entrada para una salida individual.
type ExitInput struct {
	MaterialID     int64
	Quantity       int
	PersonName     string
	PersonLastName string
	Area           string
	Ceco           string
	SapCode        string
	WorkOrder      string
}

// CartLineInput línea de una salida por carrito.
type CartLineInput struct {
	MaterialID int64
	Quantity   int
}

// CartExitInput entrada para una salida por carrito.
type CartExitInput struct {
	PersonName     string
	PersonLastName string
	Area           string
	Ceco           string
	SapCode        string
	WorkOrder      string
	Lines          []CartLineInput
}

// RecordExit valida, bloquea el material, decrementa stock y persiste la
// salida; todo dentro de una transacción. El RemainingStock del registro es
// stock al momento del retiro menos la cantidad, capturado una sola vez.
func (uc *RecordExitUseCase) RecordExit(ctx context.Context, input ExitInput) (*entity.MaterialExit, error) {
	if input.Quantity <= 0 || input.MaterialID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateRequester(input.PersonName, input.PersonLastName, input.Area); err != nil {
		return nil, err
	}

	now := time.Now()
	var created *entity.MaterialExit

	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		exitRepo repository.MaterialExitRepository,
		_ repository.CartExitRepository,
		_ repository.RegistryRepository,
	) error {
		material, err := materialRepo.GetForUpdate(ctx, input.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrMaterialNotFound
		}
		if material.RequiresWorkOrder() && strings.TrimSpace(input.WorkOrder) == "" {
			return domain.ErrWorkOrderRequired
		}
		if material.Stock < input.Quantity {
			return domain.ErrInsufficientStock
		}

		remaining := material.Stock - input.Quantity
		if err := materialRepo.UpdateStock(ctx, material.ID, remaining); err != nil {
			return err
		}

		exit := &entity.MaterialExit{
			TransactionID:    uuid.New().String(),
			MaterialID:       material.ID,
			MaterialName:     material.Name,
			MaterialCode:     material.Code,
			MaterialLocation: material.Location,
			MaterialType:     material.Type,
			Quantity:         input.Quantity,
			RemainingStock:   remaining,
			PersonName:       input.PersonName,
			PersonLastName:   input.PersonLastName,
			Area:             input.Area,
			Ceco:             input.Ceco,
			SapCode:          input.SapCode,
			WorkOrder:        input.WorkOrder,
			ExitDate:         now.Format("2006-01-02"),
			ExitTime:         now.Format("15:04:05"),
			CreatedAt:        now,
		}
		if err := exitRepo.Create(ctx, exit); err != nil {
			return err
		}
		created = exit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordCartExit registra un retiro de N materiales bajo un único código de
// registro. Cualquier material inexistente o sin stock aborta el lote completo:
// no queda persistencia parcial y el contador no avanza, porque el código se
// pide después de resolver y bloquear todas las líneas.
func (uc *RecordExitUseCase) RecordCartExit(ctx context.Context, input CartExitInput) (*entity.CartExit, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateRequester(input.PersonName, input.PersonLastName, input.Area); err != nil {
		return nil, err
	}
	seen := make(map[int64]bool, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity <= 0 || line.MaterialID <= 0 || seen[line.MaterialID] {
			return nil, domain.ErrInvalidInput
		}
		seen[line.MaterialID] = true
	}

	now := time.Now()
	var created *entity.CartExit

	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.MaterialExitRepository,
		cartRepo repository.CartExitRepository,
		registryRepo repository.RegistryRepository,
	) error {
		// Bloquear las filas en orden de id para evitar deadlocks entre
		// carritos concurrentes que compartan materiales.
		ids := make([]int64, 0, len(input.Lines))
		for _, line := range input.Lines {
			ids = append(ids, line.MaterialID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		locked := make(map[int64]*entity.Material, len(ids))
		for _, id := range ids {
			material, err := materialRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if material == nil {
				return domain.ErrMaterialNotFound
			}
			locked[id] = material
		}

		requiresWorkOrder := false
		for _, m := range locked {
			if m.RequiresWorkOrder() {
				requiresWorkOrder = true
				break
			}
		}
		if requiresWorkOrder && strings.TrimSpace(input.WorkOrder) == "" {
			return domain.ErrWorkOrderRequired
		}

		lines := make([]entity.CartExitMaterial, 0, len(input.Lines))
		totalQuantity := 0
		for _, line := range input.Lines {
			material := locked[line.MaterialID]
			if material.Stock < line.Quantity {
				return domain.ErrInsufficientStock
			}
			remaining := material.Stock - line.Quantity
			if err := materialRepo.UpdateStock(ctx, material.ID, remaining); err != nil {
				return err
			}
			lines = append(lines, entity.CartExitMaterial{
				MaterialID:       material.ID,
				MaterialName:     material.Name,
				MaterialCode:     material.Code,
				MaterialLocation: material.Location,
				MaterialType:     material.Type,
				Quantity:         line.Quantity,
				RemainingStock:   remaining,
			})
			totalQuantity += line.Quantity
		}

		// El código se emite recién aquí: un lote abortado no lo consume.
		code, err := registryRepo.Next(ctx)
		if err != nil {
			return err
		}

		cart := &entity.CartExit{
			TransactionID:  uuid.New().String(),
			RegistryCode:   FormatRegistryCode(code),
			PersonName:     input.PersonName,
			PersonLastName: input.PersonLastName,
			Area:           input.Area,
			Ceco:           input.Ceco,
			SapCode:        input.SapCode,
			WorkOrder:      input.WorkOrder,
			Materials:      lines,
			TotalItems:     len(lines),
			TotalQuantity:  totalQuantity,
			ExitDate:       now.Format("2006-01-02"),
			ExitTime:       now.Format("15:04:05"),
			CreatedAt:      now,
		}
		if err := cartRepo.Create(ctx, cart); err != nil {
			return err
		}
		created = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func validateRequester(name, lastName, area string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(lastName) == "" || strings.TrimSpace(area) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}
