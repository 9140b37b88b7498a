package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

var _ repository.RegistryRepository = (*RegistryRepo)(nil)

// RegistryRepo contador de códigos de registro sobre una única fila.
// El CHECK (id = 1) en la tabla garantiza que nunca exista más de un contador.
type RegistryRepo struct {
	q Querier
}

// NewRegistryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistryRepository(q Querier) *RegistryRepo {
	return &RegistryRepo{q: q}
}

// Next incrementa atómicamente el contador y devuelve el nuevo valor. El upsert
// crea la fila en el primer uso; dentro de una transacción la fila queda
// bloqueada hasta el commit, así dos salidas concurrentes no comparten código.
func (r *RegistryRepo) Next(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO registry_counter (id, last_code) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET last_code = registry_counter.last_code + 1
		RETURNING last_code`
	var code int64
	if err := r.q.QueryRow(ctx, query).Scan(&code); err != nil {
		return 0, fmt.Errorf("next registry code: %w", err)
	}
	return code, nil
}

// Current devuelve el último código emitido sin avanzar el contador; 0 si nunca
// se emitió uno (estado ausente o reiniciado).
func (r *RegistryRepo) Current(ctx context.Context) (int64, error) {
	var code int64
	err := r.q.QueryRow(ctx, `SELECT last_code FROM registry_counter WHERE id = 1`).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("current registry code: %w", err)
	}
	return code, nil
}
