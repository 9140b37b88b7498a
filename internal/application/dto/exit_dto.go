package dto

import (
	"time"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// RecordExitRequest petición de salida individual.
type RecordExitRequest struct {
	MaterialID     int64  `json:"material_id"`
	Quantity       int    `json:"quantity"`
	PersonName     string `json:"person_name"`
	PersonLastName string `json:"person_last_name"`
	Area           string `json:"area"`
	Ceco           string `json:"ceco"`
	SapCode        string `json:"sap_code"`
	WorkOrder      string `json:"work_order"` // obligatoria si el material es ERSA
}

// CartLineRequest línea de una salida por carrito.
type CartLineRequest struct {
	MaterialID int64 `json:"material_id"`
	Quantity   int   `json:"quantity"`
}

// RecordCartExitRequest petición de salida por carrito.
type RecordCartExitRequest struct {
	PersonName     string            `json:"person_name"`
	PersonLastName string            `json:"person_last_name"`
	Area           string            `json:"area"`
	Ceco           string            `json:"ceco"`
	SapCode        string            `json:"sap_code"`
	WorkOrder      string            `json:"work_order"`
	Materials      []CartLineRequest `json:"materials"`
}

// UpdateExitRequest corrección administrativa parcial: solo los campos
// presentes en el JSON se aplican (merge superficial).
type UpdateExitRequest struct {
	PersonName     *string `json:"person_name"`
	PersonLastName *string `json:"person_last_name"`
	Area           *string `json:"area"`
	Ceco           *string `json:"ceco"`
	SapCode        *string `json:"sap_code"`
	WorkOrder      *string `json:"work_order"`
	Quantity       *int    `json:"quantity"`
}

// MaterialExitResponse representación HTTP de una salida individual.
type MaterialExitResponse struct {
	ID               int64     `json:"id"`
	TransactionID    string    `json:"transaction_id"`
	MaterialID       int64     `json:"material_id"`
	MaterialName     string    `json:"material_name"`
	MaterialCode     string    `json:"material_code"`
	MaterialLocation string    `json:"material_location"`
	MaterialType     string    `json:"material_type"`
	Quantity         int       `json:"quantity"`
	RemainingStock   int       `json:"remaining_stock"`
	PersonName       string    `json:"person_name"`
	PersonLastName   string    `json:"person_last_name"`
	Area             string    `json:"area"`
	Ceco             string    `json:"ceco,omitempty"`
	SapCode          string    `json:"sap_code,omitempty"`
	WorkOrder        string    `json:"work_order,omitempty"`
	ExitDate         string    `json:"exit_date"`
	ExitTime         string    `json:"exit_time"`
	CreatedAt        time.Time `json:"created_at"`
}

// CartExitMaterialResponse línea de salida por carrito.
type CartExitMaterialResponse struct {
	MaterialID       int64  `json:"material_id"`
	MaterialName     string `json:"material_name"`
	MaterialCode     string `json:"material_code"`
	MaterialLocation string `json:"material_location"`
	MaterialType     string `json:"material_type"`
	Quantity         int    `json:"quantity"`
	RemainingStock   int    `json:"remaining_stock"`
}

// CartExitResponse representación HTTP de una salida por carrito.
type CartExitResponse struct {
	ID             int64                      `json:"id"`
	TransactionID  string                     `json:"transaction_id"`
	RegistryCode   string                     `json:"registry_code"`
	PersonName     string                     `json:"person_name"`
	PersonLastName string                     `json:"person_last_name"`
	Area           string                     `json:"area"`
	Ceco           string                     `json:"ceco,omitempty"`
	SapCode        string                     `json:"sap_code,omitempty"`
	WorkOrder      string                     `json:"work_order,omitempty"`
	Materials      []CartExitMaterialResponse `json:"materials"`
	TotalItems     int                        `json:"total_items"`
	TotalQuantity  int                        `json:"total_quantity"`
	ExitDate       string                     `json:"exit_date"`
	ExitTime       string                     `json:"exit_time"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// MovementResponse vista unificada del historial: unión etiquetada con
// exactamente una de las dos variantes presente según Kind.
type MovementResponse struct {
	Kind   string                `json:"kind"` // single | cart
	Single *MaterialExitResponse `json:"single,omitempty"`
	Cart   *CartExitResponse     `json:"cart,omitempty"`
}

// ToMaterialExitResponse convierte la entidad al DTO HTTP.
func ToMaterialExitResponse(e *entity.MaterialExit) MaterialExitResponse {
	return MaterialExitResponse{
		ID:               e.ID,
		TransactionID:    e.TransactionID,
		MaterialID:       e.MaterialID,
		MaterialName:     e.MaterialName,
		MaterialCode:     e.MaterialCode,
		MaterialLocation: e.MaterialLocation,
		MaterialType:     e.MaterialType,
		Quantity:         e.Quantity,
		RemainingStock:   e.RemainingStock,
		PersonName:       e.PersonName,
		PersonLastName:   e.PersonLastName,
		Area:             e.Area,
		Ceco:             e.Ceco,
		SapCode:          e.SapCode,
		WorkOrder:        e.WorkOrder,
		ExitDate:         e.ExitDate,
		ExitTime:         e.ExitTime,
		CreatedAt:        e.CreatedAt,
	}
}

// ToCartExitResponse convierte la entidad al DTO HTTP.
func ToCartExitResponse(e *entity.CartExit) CartExitResponse {
	materials := make([]CartExitMaterialResponse, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, CartExitMaterialResponse{
			MaterialID:       m.MaterialID,
			MaterialName:     m.MaterialName,
			MaterialCode:     m.MaterialCode,
			MaterialLocation: m.MaterialLocation,
			MaterialType:     m.MaterialType,
			Quantity:         m.Quantity,
			RemainingStock:   m.RemainingStock,
		})
	}
	return CartExitResponse{
		ID:             e.ID,
		TransactionID:  e.TransactionID,
		RegistryCode:   e.RegistryCode,
		PersonName:     e.PersonName,
		PersonLastName: e.PersonLastName,
		Area:           e.Area,
		Ceco:           e.Ceco,
		SapCode:        e.SapCode,
		WorkOrder:      e.WorkOrder,
		Materials:      materials,
		TotalItems:     e.TotalItems,
		TotalQuantity:  e.TotalQuantity,
		ExitDate:       e.ExitDate,
		ExitTime:       e.ExitTime,
		CreatedAt:      e.CreatedAt,
	}
}

// ToMovementResponse convierte la unión etiquetada al DTO HTTP (manejo
// exhaustivo por variante).
func ToMovementResponse(m entity.Movement) MovementResponse {
	switch m.Kind {
	case entity.MovementKindSingle:
		r := ToMaterialExitResponse(m.Single)
		return MovementResponse{Kind: m.Kind, Single: &r}
	case entity.MovementKindCart:
		r := ToCartExitResponse(m.Cart)
		return MovementResponse{Kind: m.Kind, Cart: &r}
	}
	return MovementResponse{Kind: m.Kind}
}
