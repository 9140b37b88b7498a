package repository

import (
	"context"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	CreateBulk(ctx context.Context, materials []*entity.Material) error
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	// GetForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Material, error)
	List(ctx context.Context) ([]*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	UpdateStock(ctx context.Context, id int64, stock int) error
	Delete(ctx context.Context, id int64) (bool, error)
}
