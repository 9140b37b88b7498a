package exits

import (
	"context"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el decremento de stock y el
// registro de la salida se confirmen juntos o no se confirme ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		exitRepo repository.MaterialExitRepository,
		cartRepo repository.CartExitRepository,
		registryRepo repository.RegistryRepository,
	) error) error
}
