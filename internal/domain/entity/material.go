package entity

import "time"

// Tipos de material (clases SAP manejadas en la bodega).
const (
	MaterialTypeERSA = "ERSA" // repuesto: exige orden de trabajo en cada salida
	MaterialTypeUNBW = "UNBW" // material no valorado
)

// ValidMaterialType indica si el tipo pertenece al conjunto cerrado de clases.
func ValidMaterialType(t string) bool {
	return t == MaterialTypeERSA || t == MaterialTypeUNBW
}

// Material representa un ítem del inventario de bodega. Stock se maneja en
// unidades enteras; ReorderPoint y MaxLevel son los umbrales de reposición.
type Material struct {
	ID           int64
	Code         string
	Name         string
	Location     string
	Stock        int
	Unit         string
	Type         string // ERSA | UNBW
	ReorderPoint int    // punto de pedido
	MaxLevel     int    // punto máximo
	Category     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequiresWorkOrder indica si las salidas de este material exigen orden de trabajo.
func (m *Material) RequiresWorkOrder() bool {
	return m.Type == MaterialTypeERSA
}
