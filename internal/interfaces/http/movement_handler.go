package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
)

// MovementHandler expone el historial unificado y el contador de registro.
type MovementHandler struct {
	history *exits.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(history *exits.HistoryUseCase) *MovementHandler {
	return &MovementHandler{history: history}
}

// List godoc
// @Summary      Historial unificado de movimientos
// @Description  Salidas individuales y por carrito mezcladas, más recientes primero.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements, err := h.history.ListMovements(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// CurrentRegistryCode godoc
// @Summary      Último código de registro emitido
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/registry/current [get]
func (h *MovementHandler) CurrentRegistryCode(c *fiber.Ctx) error {
	code, err := h.history.CurrentRegistryCode(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"registry_code": code})
}
