package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/analytics"
)

// DashboardHandler expone el resumen del tablero principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del tablero
// @Description  Totales de inventario, conteos por nivel de stock y actividad del día.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(summary)
}
