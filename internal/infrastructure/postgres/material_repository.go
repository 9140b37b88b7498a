package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, code, name, location, stock, unit, type, reorder_point, max_level, category, created_at, updated_at`

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material nuevo y asigna su id.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (code, name, location, stock, unit, type, reorder_point, max_level, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.Code, m.Name, m.Location, m.Stock, m.Unit, m.Type,
		m.ReorderPoint, m.MaxLevel, m.Category, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// CreateBulk persiste el lote completo de materiales (importación) en un solo
// batch de pgx. El batch viaja con un único Sync, así que fuera de una
// transacción explícita corre como una transacción implícita: una fila que
// falle (por ejemplo un código duplicado) descarta el lote entero y no queda
// ningún prefijo persistido.
func (r *MaterialRepo) CreateBulk(ctx context.Context, materials []*entity.Material) error {
	if len(materials) == 0 {
		return nil
	}
	query := `
		INSERT INTO materials (code, name, location, stock, unit, type, reorder_point, max_level, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`
	batch := &pgx.Batch{}
	for _, m := range materials {
		batch.Queue(query,
			m.Code, m.Name, m.Location, m.Stock, m.Unit, m.Type,
			m.ReorderPoint, m.MaxLevel, m.Category, m.CreatedAt,
		)
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()

	for _, m := range materials {
		if err := results.QueryRow().Scan(&m.ID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("bulk material %q: %w", m.Code, domain.ErrDuplicate)
			}
			return fmt.Errorf("bulk material %q: %w", m.Code, err)
		}
	}
	return results.Close()
}

// GetByID obtiene un material por id; (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get material")
}

// GetForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
func (r *MaterialRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get material for update")
}

// List devuelve todos los materiales ordenados por nombre.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := scanMaterial(rows, &m); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update reemplaza los campos descriptivos y umbrales del material.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials
		SET code = $2, name = $3, location = $4, stock = $5, unit = $6, type = $7,
		    reorder_point = $8, max_level = $9, category = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.Code, m.Name, m.Location, m.Stock, m.Unit, m.Type,
		m.ReorderPoint, m.MaxLevel, m.Category,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock actual del material (edición directa o decremento de salida).
func (r *MaterialRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE materials SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el material e indica si algo fue borrado.
func (r *MaterialRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MaterialRepo) scanOne(row pgx.Row, op string) (*entity.Material, error) {
	var m entity.Material
	err := scanMaterial(row, &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

func scanMaterial(row pgx.Row, m *entity.Material) error {
	return row.Scan(
		&m.ID, &m.Code, &m.Name, &m.Location, &m.Stock, &m.Unit, &m.Type,
		&m.ReorderPoint, &m.MaxLevel, &m.Category, &m.CreatedAt, &m.UpdatedAt,
	)
}
