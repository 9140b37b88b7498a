package exits_test

import (
	"context"
	"sort"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. Guardan valores (no
// punteros) para que las fotos devueltas sean independientes del almacén, y el
// runner de transacciones restaura el estado completo cuando el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type memMaterialRepo struct {
	nextID int64
	items  map[int64]entity.Material
}

func newMemMaterialRepo() *memMaterialRepo {
	return &memMaterialRepo{items: make(map[int64]entity.Material)}
}

func (r *memMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.nextID++
	m.ID = r.nextID
	r.items[m.ID] = *m
	return nil
}

func (r *memMaterialRepo) CreateBulk(ctx context.Context, materials []*entity.Material) error {
	for _, m := range materials {
		if err := r.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *memMaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memMaterialRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Material, error) {
	return r.GetByID(ctx, id)
}

func (r *memMaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(r.items))
	for _, m := range r.items {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	if _, ok := r.items[m.ID]; !ok {
		return nil
	}
	r.items[m.ID] = *m
	return nil
}

func (r *memMaterialRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	m, ok := r.items[id]
	if !ok {
		return nil
	}
	m.Stock = stock
	r.items[id] = m
	return nil
}

func (r *memMaterialRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memExitRepo struct {
	nextID int64
	items  []entity.MaterialExit
}

func (r *memExitRepo) Create(_ context.Context, exit *entity.MaterialExit) error {
	r.nextID++
	exit.ID = r.nextID
	r.items = append(r.items, *exit)
	return nil
}

func (r *memExitRepo) GetByID(_ context.Context, id int64) (*entity.MaterialExit, error) {
	for _, e := range r.items {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *memExitRepo) List(_ context.Context) ([]*entity.MaterialExit, error) {
	out := make([]*entity.MaterialExit, 0, len(r.items))
	for _, e := range r.items {
		e := e
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memExitRepo) ListByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialExit, error) {
	all, _ := r.List(ctx)
	out := make([]*entity.MaterialExit, 0)
	for _, e := range all {
		if e.MaterialID == materialID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memExitRepo) Update(_ context.Context, id int64, fields repository.ExitUpdate) (*entity.MaterialExit, error) {
	for i, e := range r.items {
		if e.ID != id {
			continue
		}
		applyExitUpdate(&e, fields)
		if fields.Quantity != nil {
			e.Quantity = *fields.Quantity
		}
		r.items[i] = e
		return &e, nil
	}
	return nil, nil
}

func (r *memExitRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memCartRepo struct {
	nextID int64
	items  []entity.CartExit
}

func (r *memCartRepo) Create(_ context.Context, exit *entity.CartExit) error {
	r.nextID++
	exit.ID = r.nextID
	r.items = append(r.items, *exit)
	return nil
}

func (r *memCartRepo) GetByID(_ context.Context, id int64) (*entity.CartExit, error) {
	for _, c := range r.items {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCartRepo) List(_ context.Context) ([]*entity.CartExit, error) {
	out := make([]*entity.CartExit, 0, len(r.items))
	for _, c := range r.items {
		c := c
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCartRepo) Update(_ context.Context, id int64, fields repository.ExitUpdate) (*entity.CartExit, error) {
	for i, c := range r.items {
		if c.ID != id {
			continue
		}
		if fields.PersonName != nil {
			c.PersonName = *fields.PersonName
		}
		if fields.PersonLastName != nil {
			c.PersonLastName = *fields.PersonLastName
		}
		if fields.Area != nil {
			c.Area = *fields.Area
		}
		if fields.Ceco != nil {
			c.Ceco = *fields.Ceco
		}
		if fields.SapCode != nil {
			c.SapCode = *fields.SapCode
		}
		if fields.WorkOrder != nil {
			c.WorkOrder = *fields.WorkOrder
		}
		if fields.Quantity != nil {
			c.TotalQuantity = *fields.Quantity
		}
		r.items[i] = c
		return &c, nil
	}
	return nil, nil
}

func (r *memCartRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func applyExitUpdate(e *entity.MaterialExit, fields repository.ExitUpdate) {
	if fields.PersonName != nil {
		e.PersonName = *fields.PersonName
	}
	if fields.PersonLastName != nil {
		e.PersonLastName = *fields.PersonLastName
	}
	if fields.Area != nil {
		e.Area = *fields.Area
	}
	if fields.Ceco != nil {
		e.Ceco = *fields.Ceco
	}
	if fields.SapCode != nil {
		e.SapCode = *fields.SapCode
	}
	if fields.WorkOrder != nil {
		e.WorkOrder = *fields.WorkOrder
	}
}

// ──────────────────────────────────────────────────────────────────────────────

type memRegistryRepo struct {
	last int64
}

func (r *memRegistryRepo) Next(_ context.Context) (int64, error) {
	r.last++
	return r.last, nil
}

func (r *memRegistryRepo) Current(_ context.Context) (int64, error) {
	return r.last, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Runner de transacciones: ejecuta el callback sobre los repos en memoria y,
// si falla, restaura el estado previo (equivalente al ROLLBACK del runner real).
// ──────────────────────────────────────────────────────────────────────────────

type memTxRunner struct {
	materials *memMaterialRepo
	exits     *memExitRepo
	carts     *memCartRepo
	registry  *memRegistryRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	repository.MaterialRepository,
	repository.MaterialExitRepository,
	repository.CartExitRepository,
	repository.RegistryRepository,
) error) error {
	materialsSnap := make(map[int64]entity.Material, len(tx.materials.items))
	for id, m := range tx.materials.items {
		materialsSnap[id] = m
	}
	materialsNext := tx.materials.nextID
	exitsSnap := append([]entity.MaterialExit(nil), tx.exits.items...)
	exitsNext := tx.exits.nextID
	cartsSnap := append([]entity.CartExit(nil), tx.carts.items...)
	cartsNext := tx.carts.nextID
	registrySnap := tx.registry.last

	err := fn(tx.materials, tx.exits, tx.carts, tx.registry)
	if err != nil {
		tx.materials.items = materialsSnap
		tx.materials.nextID = materialsNext
		tx.exits.items = exitsSnap
		tx.exits.nextID = exitsNext
		tx.carts.items = cartsSnap
		tx.carts.nextID = cartsNext
		tx.registry.last = registrySnap
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	materials *memMaterialRepo
	exits     *memExitRepo
	carts     *memCartRepo
	registry  *memRegistryRepo
	txRunner  *memTxRunner
}

func newTestEnv() *testEnv {
	env := &testEnv{
		materials: newMemMaterialRepo(),
		exits:     &memExitRepo{},
		carts:     &memCartRepo{},
		registry:  &memRegistryRepo{},
	}
	env.txRunner = &memTxRunner{
		materials: env.materials,
		exits:     env.exits,
		carts:     env.carts,
		registry:  env.registry,
	}
	return env
}

// seedMaterial agrega un material al catálogo y devuelve su id.
func (env *testEnv) seedMaterial(m entity.Material) int64 {
	_ = env.materials.Create(context.Background(), &m)
	return m.ID
}
