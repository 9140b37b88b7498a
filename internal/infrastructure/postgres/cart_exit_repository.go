package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

var _ repository.CartExitRepository = (*CartExitRepo)(nil)

const cartColumns = `id, transaction_id, registry_code, person_name, person_last_name, area, ceco, sap_code,
	work_order, total_items, total_quantity, exit_date, exit_time, created_at`

// CartExitRepo implementación de CartExitRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas viven en cart_exit_materials; el Create debe ejecutarse dentro de
// una transacción para que cabecera y líneas queden juntas o no queden.
type CartExitRepo struct {
	q Querier
}

// NewCartExitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartExitRepository(q Querier) *CartExitRepo {
	return &CartExitRepo{q: q}
}

// Create persiste la cabecera y todas las líneas de la salida por carrito.
func (r *CartExitRepo) Create(ctx context.Context, e *entity.CartExit) error {
	query := `
		INSERT INTO cart_exits (transaction_id, registry_code, person_name, person_last_name, area, ceco,
			sap_code, work_order, total_items, total_quantity, exit_date, exit_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.TransactionID, e.RegistryCode, e.PersonName, e.PersonLastName, e.Area, e.Ceco,
		e.SapCode, e.WorkOrder, e.TotalItems, e.TotalQuantity, e.ExitDate, e.ExitTime, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create cart exit: código de registro duplicado: %w", err)
		}
		return fmt.Errorf("create cart exit: %w", err)
	}

	lineQuery := `
		INSERT INTO cart_exit_materials (cart_exit_id, material_id, material_name, material_code,
			material_location, material_type, quantity, remaining_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, m := range e.Materials {
		if _, err := r.q.Exec(ctx, lineQuery,
			e.ID, m.MaterialID, m.MaterialName, m.MaterialCode,
			m.MaterialLocation, m.MaterialType, m.Quantity, m.RemainingStock,
		); err != nil {
			return fmt.Errorf("create cart exit line (material %d): %w", m.MaterialID, err)
		}
	}
	return nil
}

// GetByID obtiene la salida con sus líneas; (nil, nil) si no existe.
func (r *CartExitRepo) GetByID(ctx context.Context, id int64) (*entity.CartExit, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_exits WHERE id = $1`
	var e entity.CartExit
	if err := scanCartExit(r.q.QueryRow(ctx, query, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart exit: %w", err)
	}
	if err := r.loadMaterials(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// List devuelve todas las salidas por carrito con sus líneas, más recientes primero.
func (r *CartExitRepo) List(ctx context.Context) ([]*entity.CartExit, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_exits ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cart exits: %w", err)
	}
	defer rows.Close()

	var list []*entity.CartExit
	for rows.Next() {
		var e entity.CartExit
		if err := scanCartExit(rows, &e); err != nil {
			return nil, fmt.Errorf("scan cart exit: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range list {
		if err := r.loadMaterials(ctx, e); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update aplica el merge superficial (la cantidad se mapea a total_quantity) y
// devuelve el registro resultante con líneas, o (nil, nil) si el id no existe.
func (r *CartExitRepo) Update(ctx context.Context, id int64, fields repository.ExitUpdate) (*entity.CartExit, error) {
	sets, args := buildExitUpdate(fields, "total_quantity")
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE cart_exits SET %s WHERE id = $1 RETURNING `+cartColumns,
		strings.Join(sets, ", "))
	args = append([]any{id}, args...)

	var e entity.CartExit
	if err := scanCartExit(r.q.QueryRow(ctx, query, args...), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update cart exit: %w", err)
	}
	if err := r.loadMaterials(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete elimina la salida (las líneas caen por ON DELETE CASCADE) e indica si
// algo fue borrado. El código de registro emitido no se libera.
func (r *CartExitRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM cart_exits WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete cart exit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CartExitRepo) loadMaterials(ctx context.Context, e *entity.CartExit) error {
	query := `
		SELECT material_id, material_name, material_code, material_location, material_type, quantity, remaining_stock
		FROM cart_exit_materials WHERE cart_exit_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, e.ID)
	if err != nil {
		return fmt.Errorf("load cart exit materials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m entity.CartExitMaterial
		if err := rows.Scan(&m.MaterialID, &m.MaterialName, &m.MaterialCode,
			&m.MaterialLocation, &m.MaterialType, &m.Quantity, &m.RemainingStock); err != nil {
			return fmt.Errorf("scan cart exit material: %w", err)
		}
		e.Materials = append(e.Materials, m)
	}
	return rows.Err()
}

func scanCartExit(row pgx.Row, e *entity.CartExit) error {
	return row.Scan(
		&e.ID, &e.TransactionID, &e.RegistryCode, &e.PersonName, &e.PersonLastName,
		&e.Area, &e.Ceco, &e.SapCode, &e.WorkOrder, &e.TotalItems, &e.TotalQuantity,
		&e.ExitDate, &e.ExitTime, &e.CreatedAt,
	)
}
