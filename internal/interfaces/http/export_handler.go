package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/export"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/inventory"
)

// ExportHandler exporta e importa CSV de inventario y movimientos.
type ExportHandler struct {
	exportUC    *export.UseCase
	inventoryUC *inventory.UseCase
	history     *exits.HistoryUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(exportUC *export.UseCase, inventoryUC *inventory.UseCase, history *exits.HistoryUseCase) *ExportHandler {
	return &ExportHandler{exportUC: exportUC, inventoryUC: inventoryUC, history: history}
}

// ExportMaterials godoc
// @Summary      Exportar inventario como CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        zero_stock  query  bool  false  "true exporta solo los materiales agotados"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/materials [get]
func (h *ExportHandler) ExportMaterials(c *fiber.Ctx) error {
	filter := inventory.Filter{}
	if c.QueryBool("zero_stock") {
		filter.StockLevel = inventory.StockLevelZero
	}
	materials, err := h.inventoryUC.List(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	var buf bytes.Buffer
	if err := h.exportUC.WriteMaterials(&buf, materials); err != nil {
		return respondDomainError(c, err)
	}
	return sendCSV(c, "inventario", buf.Bytes())
}

// ExportMovements godoc
// @Summary      Exportar historial de movimientos como CSV
// @Description  Una fila por salida individual y una por línea de carrito.
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/movements [get]
func (h *ExportHandler) ExportMovements(c *fiber.Ctx) error {
	movements, err := h.history.ListMovements(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	var buf bytes.Buffer
	if err := h.exportUC.WriteMovements(&buf, movements); err != nil {
		return respondDomainError(c, err)
	}
	return sendCSV(c, "movimientos", buf.Bytes())
}

// ImportMaterials godoc
// @Summary      Importar materiales desde CSV
// @Description  El encabezado debe coincidir con el de exportación; una fila inválida aborta el archivo completo.
// @Tags         export
// @Security     Bearer
// @Accept       text/csv
// @Produce      json
// @Success      201  {array}   dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/import/materials [post]
func (h *ExportHandler) ImportMaterials(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo CSV vacío"})
	}
	inputs, err := h.exportUC.ParseMaterials(bytes.NewReader(body))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
	}
	materials, err := h.inventoryUC.CreateBulk(c.Context(), inputs)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.ToMaterialResponse(m))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func sendCSV(c *fiber.Ctx, name string, data []byte) error {
	filename := name + "-" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(data)
}
