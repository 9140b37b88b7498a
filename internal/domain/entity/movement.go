package entity

import "time"

// Tipos de movimiento para la vista unificada de historial.
const (
	MovementKindSingle = "single" // salida individual
	MovementKindCart   = "cart"   // salida por carrito
)

// Movement es la unión etiquetada sobre los dos tipos de salida. Exactamente
// uno de Single o Cart es no-nulo según Kind; los consumidores deben manejar
// ambas variantes de forma exhaustiva.
type Movement struct {
	Kind   string
	Single *MaterialExit
	Cart   *CartExit
}

// CreatedAt devuelve el instante de creación de la variante activa.
func (m Movement) CreatedAt() time.Time {
	switch m.Kind {
	case MovementKindSingle:
		return m.Single.CreatedAt
	case MovementKindCart:
		return m.Cart.CreatedAt
	}
	return time.Time{}
}
