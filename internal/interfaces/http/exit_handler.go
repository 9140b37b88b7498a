package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// ExitHandler maneja las salidas individuales de material.
type ExitHandler struct {
	record  *exits.RecordExitUseCase
	history *exits.HistoryUseCase
}

// NewExitHandler construye el handler.
func NewExitHandler(record *exits.RecordExitUseCase, history *exits.HistoryUseCase) *ExitHandler {
	return &ExitHandler{record: record, history: history}
}

// Record godoc
// @Summary      Registrar salida individual
// @Description  Decremento de stock y registro de la salida en una sola transacción.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordExitRequest  true  "material_id, quantity, solicitante, destino"
// @Success      201  {object}  dto.MaterialExitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *ExitHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	exit, err := h.record.RecordExit(c.Context(), exits.ExitInput{
		MaterialID:     in.MaterialID,
		Quantity:       in.Quantity,
		PersonName:     in.PersonName,
		PersonLastName: in.PersonLastName,
		Area:           in.Area,
		Ceco:           in.Ceco,
		SapCode:        in.SapCode,
		WorkOrder:      in.WorkOrder,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMaterialExitResponse(exit))
}

// List godoc
// @Summary      Listar salidas individuales
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        material_id  query  int  false  "Filtrar por material"
// @Success      200  {array}  dto.MaterialExitResponse
// @Router       /api/exits [get]
func (h *ExitHandler) List(c *fiber.Ctx) error {
	materialID := c.QueryInt("material_id")
	if materialID > 0 {
		exitsList, err := h.history.ListExitsByMaterial(c.Context(), int64(materialID))
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(toExitResponses(exitsList))
	}
	exitsList, err := h.history.ListExits(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toExitResponses(exitsList))
}

// GetByID godoc
// @Summary      Obtener salida individual por id
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  dto.MaterialExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [get]
func (h *ExitHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	exit, err := h.history.GetExit(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMaterialExitResponse(exit))
}

// Update godoc
// @Summary      Corregir salida individual
// @Description  Merge superficial: solo los campos presentes en el JSON se aplican.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la salida"
// @Param        body  body  dto.UpdateExitRequest  true  "campos a corregir"
// @Success      200  {object}  dto.MaterialExitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [patch]
func (h *ExitHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	exit, err := h.history.UpdateExit(c.Context(), id, toUpdateInput(in))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMaterialExitResponse(exit))
}

// Delete godoc
// @Summary      Eliminar salida individual
// @Description  Borra solo el registro; las unidades retiradas no vuelven al stock.
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [delete]
func (h *ExitHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	deleted, err := h.history.DeleteExit(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func toExitResponses(list []*entity.MaterialExit) []dto.MaterialExitResponse {
	out := make([]dto.MaterialExitResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToMaterialExitResponse(e))
	}
	return out
}

func toUpdateInput(in dto.UpdateExitRequest) exits.UpdateInput {
	return exits.UpdateInput{
		PersonName:     in.PersonName,
		PersonLastName: in.PersonLastName,
		Area:           in.Area,
		Ceco:           in.Ceco,
		SapCode:        in.SapCode,
		WorkOrder:      in.WorkOrder,
		Quantity:       in.Quantity,
	}
}
