package repository

import (
	"context"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// ExitUpdate son los campos enmendables de una salida (corrección
// administrativa). Solo los punteros no-nulos se aplican; el merge es
// superficial y nunca toca las fotos de material ni el stock restante.
type ExitUpdate struct {
	PersonName     *string
	PersonLastName *string
	Area           *string
	Ceco           *string
	SapCode        *string
	WorkOrder      *string
	Quantity       *int
}

// MaterialExitRepository define el puerto de persistencia para salidas
// individuales.
type MaterialExitRepository interface {
	Create(ctx context.Context, exit *entity.MaterialExit) error
	GetByID(ctx context.Context, id int64) (*entity.MaterialExit, error)
	// List devuelve todas las salidas ordenadas por fecha de creación descendente.
	List(ctx context.Context) ([]*entity.MaterialExit, error)
	ListByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialExit, error)
	// Update aplica el merge superficial y devuelve el registro actualizado,
	// o (nil, nil) si el id no existe.
	Update(ctx context.Context, id int64, fields ExitUpdate) (*entity.MaterialExit, error)
	// Delete elimina por id e indica si algo fue borrado. No compensa stock.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CartExitRepository define el puerto de persistencia para salidas por carrito.
type CartExitRepository interface {
	Create(ctx context.Context, exit *entity.CartExit) error
	GetByID(ctx context.Context, id int64) (*entity.CartExit, error)
	List(ctx context.Context) ([]*entity.CartExit, error)
	Update(ctx context.Context, id int64, fields ExitUpdate) (*entity.CartExit, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
