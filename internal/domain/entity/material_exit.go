package entity

import "time"

// MaterialExit registra una salida individual de material. Es inmutable una vez
// creada: los campos Material* y RemainingStock son una foto del material al
// momento del retiro y nunca se recalculan, aunque el stock cambie después.
type MaterialExit struct {
	ID            int64
	TransactionID string // enlaza la salida con el decremento de stock de su transacción

	MaterialID       int64
	MaterialName     string
	MaterialCode     string
	MaterialLocation string
	MaterialType     string // ERSA | UNBW
	Quantity         int
	RemainingStock   int // stock del material menos Quantity, capturado al crear

	// Datos del solicitante
	PersonName     string
	PersonLastName string

	// Datos del destino
	Area      string
	Ceco      string // centro de costos (opcional)
	SapCode   string // código SAP (opcional)
	WorkOrder string // OT, obligatoria para ERSA

	ExitDate  string // YYYY-MM-DD
	ExitTime  string // HH:MM:SS
	CreatedAt time.Time
}
