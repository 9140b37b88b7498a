package dto

import (
	"time"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// CreateMaterialRequest alta manual o fila de importación de un material.
type CreateMaterialRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Stock        int    `json:"stock"`
	Unit         string `json:"unit"`
	Type         string `json:"type"` // ERSA | UNBW
	ReorderPoint int    `json:"reorder_point"`
	MaxLevel     int    `json:"max_level"`
	Category     string `json:"category"`
}

// BulkCreateMaterialsRequest lote de materiales (importación).
type BulkCreateMaterialsRequest struct {
	Materials []CreateMaterialRequest `json:"materials"`
}

// UpdateStockRequest edición directa de stock por el administrador.
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// MaterialFilter filtros del listado de inventario.
type MaterialFilter struct {
	Query      string `query:"q"`           // busca en nombre, código y ubicación
	Name       string `query:"name"`
	Code       string `query:"code"`
	Location   string `query:"location"`
	StockLevel string `query:"stock_level"` // all | low | critical | zero
}

// MaterialResponse representación HTTP de un material.
type MaterialResponse struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Stock        int       `json:"stock"`
	Unit         string    `json:"unit"`
	Type         string    `json:"type"`
	ReorderPoint int       `json:"reorder_point"`
	MaxLevel     int       `json:"max_level"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToMaterialResponse convierte la entidad al DTO HTTP.
func ToMaterialResponse(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		Location:     m.Location,
		Stock:        m.Stock,
		Unit:         m.Unit,
		Type:         m.Type,
		ReorderPoint: m.ReorderPoint,
		MaxLevel:     m.MaxLevel,
		Category:     m.Category,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
