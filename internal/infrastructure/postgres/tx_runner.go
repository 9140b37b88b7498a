package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

// Ensure TxRunner implements exits.TxRunner.
var _ exits.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la pieza
// que vuelve atómico el par "registrar salida + decrementar stock".
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	exitRepo repository.MaterialExitRepository,
	cartRepo repository.CartExitRepository,
	registryRepo repository.RegistryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	materialRepo := NewMaterialRepository(tx)
	exitRepo := NewMaterialExitRepository(tx)
	cartRepo := NewCartExitRepository(tx)
	registryRepo := NewRegistryRepository(tx)

	if err := fn(materialRepo, exitRepo, cartRepo, registryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
