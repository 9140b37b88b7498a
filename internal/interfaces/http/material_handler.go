package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/inventory"
)

// MaterialHandler maneja las peticiones HTTP del catálogo de materiales.
type MaterialHandler struct {
	uc *inventory.UseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *inventory.UseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materiales con filtros
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Búsqueda en nombre, código y ubicación (ignora tildes)"
// @Param        name         query  string  false  "Filtrar por nombre"
// @Param        code         query  string  false  "Filtrar por código"
// @Param        location     query  string  false  "Filtrar por ubicación"
// @Param        stock_level  query  string  false  "all | low | critical | zero"
// @Success      200  {array}   dto.MaterialResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var filter dto.MaterialFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	materials, err := h.uc.List(c.Context(), inventory.Filter{
		Query:      filter.Query,
		Name:       filter.Name,
		Code:       filter.Code,
		Location:   filter.Location,
		StockLevel: filter.StockLevel,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.ToMaterialResponse(m))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener material por id
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	material, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMaterialResponse(material))
}

// Create godoc
// @Summary      Crear material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "code, name, stock, type (ERSA|UNBW), ..."
// @Success      201  {object}  dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	material, err := h.uc.Create(c.Context(), toMaterialInput(in))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMaterialResponse(material))
}

// CreateBulk godoc
// @Summary      Crear materiales en lote
// @Description  Valida el lote completo antes de insertar; una fila inválida aborta todo.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCreateMaterialsRequest  true  "materials"
// @Success      201  {array}   dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materials/bulk [post]
func (h *MaterialHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkCreateMaterialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inputs := make([]inventory.MaterialInput, 0, len(in.Materials))
	for _, m := range in.Materials {
		inputs = append(inputs, toMaterialInput(m))
	}
	materials, err := h.uc.CreateBulk(c.Context(), inputs)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.ToMaterialResponse(m))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del material"
// @Param        body  body  dto.CreateMaterialRequest  true  "campos editables"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	material, err := h.uc.Update(c.Context(), id, toMaterialInput(in))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMaterialResponse(material))
}

// UpdateStock godoc
// @Summary      Fijar stock de un material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del material"
// @Param        body  body  dto.UpdateStockRequest  true  "stock"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/stock [patch]
func (h *MaterialHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	material, err := h.uc.UpdateStock(c.Context(), id, in.Stock)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMaterialResponse(material))
}

// Delete godoc
// @Summary      Eliminar material
// @Description  Las salidas históricas conservan sus fotos; el stock no se compensa.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del material"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	deleted, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material no encontrado"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func toMaterialInput(in dto.CreateMaterialRequest) inventory.MaterialInput {
	return inventory.MaterialInput{
		Code:         in.Code,
		Name:         in.Name,
		Location:     in.Location,
		Stock:        in.Stock,
		Unit:         in.Unit,
		Type:         in.Type,
		ReorderPoint: in.ReorderPoint,
		MaxLevel:     in.MaxLevel,
		Category:     in.Category,
	}
}
