package exits_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

func validExitInput(materialID int64, quantity int) exits.ExitInput {
	return exits.ExitInput{
		MaterialID:     materialID,
		Quantity:       quantity,
		PersonName:     "Juan",
		PersonLastName: "Pérez",
		Area:           "Mantenimiento",
		Ceco:           "CC-100",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas individuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExit_DescuentaStockYCapturaFoto(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{
		Code: "M-001", Name: "Rodamiento 6204", Location: "A-01",
		Stock: 10, Type: entity.MaterialTypeERSA,
	})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	input := validExitInput(id, 3)
	input.WorkOrder = "OT1"
	exit, err := uc.RecordExit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 7, exit.RemainingStock, "stock restante = stock al retirar - cantidad")
	assert.Equal(t, "Rodamiento 6204", exit.MaterialName)
	assert.Equal(t, "M-001", exit.MaterialCode)
	assert.Equal(t, "A-01", exit.MaterialLocation)
	assert.NotEmpty(t, exit.TransactionID)
	assert.NotEmpty(t, exit.ExitDate)
	assert.NotEmpty(t, exit.ExitTime)

	material, err := env.materials.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, material.Stock, "el stock del catálogo debe quedar decrementado")
}

func TestRecordExit_ERSASinOrdenDeTrabajo(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{
		Code: "M-001", Name: "Rodamiento", Stock: 10, Type: entity.MaterialTypeERSA,
	})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	_, err := uc.RecordExit(context.Background(), validExitInput(id, 3))
	assert.ErrorIs(t, err, domain.ErrWorkOrderRequired)

	material, _ := env.materials.GetByID(context.Background(), id)
	assert.Equal(t, 10, material.Stock, "un retiro rechazado no debe tocar el stock")
}

func TestRecordExit_UNBWNoExigeOrdenDeTrabajo(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{
		Code: "M-002", Name: "Guante nitrilo", Stock: 50, Type: entity.MaterialTypeUNBW,
	})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	exit, err := uc.RecordExit(context.Background(), validExitInput(id, 5))
	require.NoError(t, err)
	assert.Equal(t, 45, exit.RemainingStock)
}

func TestRecordExit_StockInsuficiente(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{
		Code: "M-002", Name: "Guante", Stock: 2, Type: entity.MaterialTypeUNBW,
	})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	_, err := uc.RecordExit(context.Background(), validExitInput(id, 3))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	material, _ := env.materials.GetByID(context.Background(), id)
	assert.Equal(t, 2, material.Stock)
	assert.Empty(t, env.exits.items, "no debe quedar salida registrada")
}

func TestRecordExit_MaterialInexistente(t *testing.T) {
	env := newTestEnv()
	uc := exits.NewRecordExitUseCase(env.txRunner)

	_, err := uc.RecordExit(context.Background(), validExitInput(99, 1))
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

func TestRecordExit_EntradaInvalida(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{
		Code: "M-002", Name: "Guante", Stock: 10, Type: entity.MaterialTypeUNBW,
	})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	casos := []exits.ExitInput{
		validExitInput(id, 0),
		validExitInput(id, -1),
		func() exits.ExitInput { in := validExitInput(id, 1); in.PersonName = "  "; return in }(),
		func() exits.ExitInput { in := validExitInput(id, 1); in.Area = ""; return in }(),
	}
	for _, in := range casos {
		_, err := uc.RecordExit(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRecordExit_FotoInmutableAnteEdicionesPosteriores(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{
		Code: "M-001", Name: "Nombre original", Location: "A-01",
		Stock: 10, Type: entity.MaterialTypeUNBW,
	})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	exit, err := uc.RecordExit(context.Background(), validExitInput(id, 2))
	require.NoError(t, err)

	// Renombrar el material después del retiro
	material, _ := env.materials.GetByID(context.Background(), id)
	material.Name = "Nombre nuevo"
	require.NoError(t, env.materials.Update(context.Background(), material))

	persisted, err := env.exits.GetByID(context.Background(), exit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nombre original", persisted.MaterialName,
		"la foto capturada al retirar no debe seguir los cambios del catálogo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas por carrito
// ──────────────────────────────────────────────────────────────────────────────

func validCartInput(lines ...exits.CartLineInput) exits.CartExitInput {
	return exits.CartExitInput{
		PersonName:     "Ana",
		PersonLastName: "Rojas",
		Area:           "Producción",
		Lines:          lines,
	}
}

func TestRecordCartExit_LoteCompletoConCodigoUnico(t *testing.T) {
	env := newTestEnv()
	idA := env.seedMaterial(entity.Material{Code: "M-A", Name: "Filtro", Stock: 10, Type: entity.MaterialTypeUNBW})
	idB := env.seedMaterial(entity.Material{Code: "M-B", Name: "Correa", Stock: 4, Type: entity.MaterialTypeUNBW})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	cart, err := uc.RecordCartExit(context.Background(), validCartInput(
		exits.CartLineInput{MaterialID: idA, Quantity: 3},
		exits.CartLineInput{MaterialID: idB, Quantity: 2},
	))
	require.NoError(t, err)

	assert.Equal(t, "0001", cart.RegistryCode)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, 5, cart.TotalQuantity)
	require.Len(t, cart.Materials, 2)

	matA, _ := env.materials.GetByID(context.Background(), idA)
	matB, _ := env.materials.GetByID(context.Background(), idB)
	assert.Equal(t, 7, matA.Stock)
	assert.Equal(t, 2, matB.Stock)
}

func TestRecordCartExit_MaterialFaltanteAbortaLoteCompleto(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{Code: "M-A", Name: "Filtro", Stock: 10, Type: entity.MaterialTypeUNBW})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	_, err := uc.RecordCartExit(context.Background(), validCartInput(
		exits.CartLineInput{MaterialID: id, Quantity: 3},
		exits.CartLineInput{MaterialID: 99, Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)

	material, _ := env.materials.GetByID(context.Background(), id)
	assert.Equal(t, 10, material.Stock, "ninguna línea debe quedar aplicada")
	assert.Empty(t, env.carts.items, "no debe quedar persistencia parcial")

	current, _ := env.registry.Current(context.Background())
	assert.Equal(t, int64(0), current, "el lote abortado no consume código de registro")

	// El siguiente carrito válido recibe el primer código.
	cart, err := uc.RecordCartExit(context.Background(), validCartInput(
		exits.CartLineInput{MaterialID: id, Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, "0001", cart.RegistryCode)
}

func TestRecordCartExit_StockInsuficienteAbortaLote(t *testing.T) {
	env := newTestEnv()
	idA := env.seedMaterial(entity.Material{Code: "M-A", Name: "Filtro", Stock: 10, Type: entity.MaterialTypeUNBW})
	idB := env.seedMaterial(entity.Material{Code: "M-B", Name: "Correa", Stock: 1, Type: entity.MaterialTypeUNBW})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	_, err := uc.RecordCartExit(context.Background(), validCartInput(
		exits.CartLineInput{MaterialID: idA, Quantity: 3},
		exits.CartLineInput{MaterialID: idB, Quantity: 5},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	matA, _ := env.materials.GetByID(context.Background(), idA)
	assert.Equal(t, 10, matA.Stock, "el decremento de la primera línea debe revertirse")
}

func TestRecordCartExit_CodigosEstrictamenteCrecientes(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{Code: "M-A", Name: "Filtro", Stock: 100, Type: entity.MaterialTypeUNBW})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	var codes []string
	for i := 0; i < 3; i++ {
		cart, err := uc.RecordCartExit(context.Background(), validCartInput(
			exits.CartLineInput{MaterialID: id, Quantity: 1},
		))
		require.NoError(t, err)
		codes = append(codes, cart.RegistryCode)
	}
	assert.Equal(t, []string{"0001", "0002", "0003"}, codes)
}

func TestRecordCartExit_ERSAEnElCarritoExigeOrdenDeTrabajo(t *testing.T) {
	env := newTestEnv()
	idA := env.seedMaterial(entity.Material{Code: "M-A", Name: "Guante", Stock: 10, Type: entity.MaterialTypeUNBW})
	idB := env.seedMaterial(entity.Material{Code: "M-B", Name: "Repuesto", Stock: 10, Type: entity.MaterialTypeERSA})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	input := validCartInput(
		exits.CartLineInput{MaterialID: idA, Quantity: 1},
		exits.CartLineInput{MaterialID: idB, Quantity: 1},
	)
	_, err := uc.RecordCartExit(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrWorkOrderRequired)

	input.WorkOrder = "OT-77"
	cart, err := uc.RecordCartExit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "OT-77", cart.WorkOrder)
}

func TestRecordCartExit_LineasInvalidas(t *testing.T) {
	env := newTestEnv()
	id := env.seedMaterial(entity.Material{Code: "M-A", Name: "Filtro", Stock: 10, Type: entity.MaterialTypeUNBW})
	uc := exits.NewRecordExitUseCase(env.txRunner)

	casos := []exits.CartExitInput{
		validCartInput(), // sin líneas
		validCartInput(exits.CartLineInput{MaterialID: id, Quantity: 0}),
		validCartInput( // material duplicado en el lote
			exits.CartLineInput{MaterialID: id, Quantity: 1},
			exits.CartLineInput{MaterialID: id, Quantity: 2},
		),
	}
	for _, in := range casos {
		_, err := uc.RecordCartExit(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato del código de registro
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatRegistryCode(t *testing.T) {
	assert.Equal(t, "0001", exits.FormatRegistryCode(1))
	assert.Equal(t, "0042", exits.FormatRegistryCode(42))
	assert.Equal(t, "9999", exits.FormatRegistryCode(9999))
	assert.Equal(t, "10000", exits.FormatRegistryCode(10000), "sobre 4 dígitos el código crece sin truncarse")
}
