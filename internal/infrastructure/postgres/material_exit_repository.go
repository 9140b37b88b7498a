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

var _ repository.MaterialExitRepository = (*MaterialExitRepo)(nil)

const exitColumns = `id, transaction_id, material_id, material_name, material_code, material_location, material_type,
	quantity, remaining_stock, person_name, person_last_name, area, ceco, sap_code, work_order,
	exit_date, exit_time, created_at`

// MaterialExitRepo implementación de MaterialExitRepository sobre PostgreSQL (usable con pool o tx).
type MaterialExitRepo struct {
	q Querier
}

// NewMaterialExitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialExitRepository(q Querier) *MaterialExitRepo {
	return &MaterialExitRepo{q: q}
}

// Create persiste una salida individual y asigna su id.
func (r *MaterialExitRepo) Create(ctx context.Context, e *entity.MaterialExit) error {
	query := `
		INSERT INTO material_exits (transaction_id, material_id, material_name, material_code, material_location,
			material_type, quantity, remaining_stock, person_name, person_last_name, area, ceco, sap_code,
			work_order, exit_date, exit_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.TransactionID, e.MaterialID, e.MaterialName, e.MaterialCode, e.MaterialLocation,
		e.MaterialType, e.Quantity, e.RemainingStock, e.PersonName, e.PersonLastName,
		e.Area, e.Ceco, e.SapCode, e.WorkOrder, e.ExitDate, e.ExitTime, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("create material exit: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por id; (nil, nil) si no existe.
func (r *MaterialExitRepo) GetByID(ctx context.Context, id int64) (*entity.MaterialExit, error) {
	query := `SELECT ` + exitColumns + ` FROM material_exits WHERE id = $1`
	var e entity.MaterialExit
	if err := scanExit(r.q.QueryRow(ctx, query, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material exit: %w", err)
	}
	return &e, nil
}

// List devuelve todas las salidas, más recientes primero.
func (r *MaterialExitRepo) List(ctx context.Context) ([]*entity.MaterialExit, error) {
	query := `SELECT ` + exitColumns + ` FROM material_exits ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListByMaterial devuelve las salidas de un material, más recientes primero.
func (r *MaterialExitRepo) ListByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialExit, error) {
	query := `SELECT ` + exitColumns + ` FROM material_exits WHERE material_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, materialID)
}

// Update aplica un merge superficial de los campos enmendables y devuelve el
// registro resultante, o (nil, nil) si el id no existe. Las fotos de material y
// el stock restante nunca se tocan.
func (r *MaterialExitRepo) Update(ctx context.Context, id int64, fields repository.ExitUpdate) (*entity.MaterialExit, error) {
	sets, args := buildExitUpdate(fields, "quantity")
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE material_exits SET %s WHERE id = $1 RETURNING `+exitColumns,
		strings.Join(sets, ", "))
	args = append([]any{id}, args...)

	var e entity.MaterialExit
	if err := scanExit(r.q.QueryRow(ctx, query, args...), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update material exit: %w", err)
	}
	return &e, nil
}

// Delete elimina por id e indica si algo fue borrado. No compensa stock.
func (r *MaterialExitRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM material_exits WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete material exit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MaterialExitRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MaterialExit, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list material exits: %w", err)
	}
	defer rows.Close()

	var list []*entity.MaterialExit
	for rows.Next() {
		var e entity.MaterialExit
		if err := scanExit(rows, &e); err != nil {
			return nil, fmt.Errorf("scan material exit: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func scanExit(row pgx.Row, e *entity.MaterialExit) error {
	return row.Scan(
		&e.ID, &e.TransactionID, &e.MaterialID, &e.MaterialName, &e.MaterialCode,
		&e.MaterialLocation, &e.MaterialType, &e.Quantity, &e.RemainingStock,
		&e.PersonName, &e.PersonLastName, &e.Area, &e.Ceco, &e.SapCode,
		&e.WorkOrder, &e.ExitDate, &e.ExitTime, &e.CreatedAt,
	)
}

// buildExitUpdate arma los fragmentos SET para un update parcial. quantityCol
// permite reutilizarlo entre material_exits (quantity) y cart_exits (total_quantity).
// Los placeholders comienzan en $2: $1 queda reservado para el id.
func buildExitUpdate(f repository.ExitUpdate, quantityCol string) ([]string, []any) {
	var sets []string
	var args []any
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)+1))
	}
	if f.PersonName != nil {
		add("person_name", *f.PersonName)
	}
	if f.PersonLastName != nil {
		add("person_last_name", *f.PersonLastName)
	}
	if f.Area != nil {
		add("area", *f.Area)
	}
	if f.Ceco != nil {
		add("ceco", *f.Ceco)
	}
	if f.SapCode != nil {
		add("sap_code", *f.SapCode)
	}
	if f.WorkOrder != nil {
		add("work_order", *f.WorkOrder)
	}
	if f.Quantity != nil {
		add(quantityCol, *f.Quantity)
	}
	return sets, args
}
