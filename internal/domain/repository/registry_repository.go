package repository

import "context"

// RegistryRepository es el contador único de códigos de registro para salidas
// por carrito. La fuente original exponía dos secuencias independientes para el
// mismo código; aquí toda emisión pasa por este puerto.
type RegistryRepository interface {
	// Next incrementa atómicamente el contador y devuelve el nuevo valor.
	// Los códigos emitidos son estrictamente crecientes y nunca se reutilizan.
	Next(ctx context.Context) (int64, error)
	// Current devuelve el último valor emitido sin avanzar el contador
	// (0 si nunca se emitió un código).
	Current(ctx context.Context) (int64, error)
}
