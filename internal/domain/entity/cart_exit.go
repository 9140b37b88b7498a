package entity

import "time"

// CartExitMaterial es una línea de una salida por carrito: foto del material
// retirado más la cantidad y el stock restante calculado en la transacción.
type CartExitMaterial struct {
	MaterialID       int64
	MaterialName     string
	MaterialCode     string
	MaterialLocation string
	MaterialType     string // ERSA | UNBW
	Quantity         int
	RemainingStock   int
}

// CartExit agrupa N líneas de retiro bajo un código de registro secuencial.
// El código se asigna una sola vez al crear y nunca se reutiliza, ni siquiera
// si la salida se elimina después.
type CartExit struct {
	ID            int64
	TransactionID string
	RegistryCode  string // secuencial con padding a 4 dígitos ("0001", "0042", ...)

	// Datos del solicitante
	PersonName     string
	PersonLastName string

	// Datos del destino
	Area      string
	Ceco      string
	SapCode   string
	WorkOrder string

	Materials     []CartExitMaterial
	TotalItems    int // cantidad de materiales distintos
	TotalQuantity int // unidades totales retiradas

	ExitDate  string // YYYY-MM-DD
	ExitTime  string // HH:MM:SS
	CreatedAt time.Time
}
