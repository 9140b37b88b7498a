package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// VoucherGenerator genera el comprobante PDF de una salida por carrito.
type VoucherGenerator interface {
	GenerateCartExitPDF(ctx context.Context, exit *entity.CartExit) ([]byte, error)
}

// CartExitHandler maneja las salidas por carrito y su comprobante.
type CartExitHandler struct {
	record  *exits.RecordExitUseCase
	history *exits.HistoryUseCase
	voucher VoucherGenerator
}

// NewCartExitHandler construye el handler.
func NewCartExitHandler(record *exits.RecordExitUseCase, history *exits.HistoryUseCase, voucher VoucherGenerator) *CartExitHandler {
	return &CartExitHandler{record: record, history: history, voucher: voucher}
}

// Record godoc
// @Summary      Registrar salida por carrito
// @Description  Todas las líneas se confirman juntas bajo un único código de registro; cualquier línea inválida aborta el lote completo sin consumir código.
// @Tags         cart-exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordCartExitRequest  true  "solicitante, destino y materiales"
// @Success      201  {object}  dto.CartExitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cart-exits [post]
func (h *CartExitHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordCartExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]exits.CartLineInput, 0, len(in.Materials))
	for _, m := range in.Materials {
		lines = append(lines, exits.CartLineInput{MaterialID: m.MaterialID, Quantity: m.Quantity})
	}
	cart, err := h.record.RecordCartExit(c.Context(), exits.CartExitInput{
		PersonName:     in.PersonName,
		PersonLastName: in.PersonLastName,
		Area:           in.Area,
		Ceco:           in.Ceco,
		SapCode:        in.SapCode,
		WorkOrder:      in.WorkOrder,
		Lines:          lines,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCartExitResponse(cart))
}

// List godoc
// @Summary      Listar salidas por carrito
// @Tags         cart-exits
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CartExitResponse
// @Router       /api/cart-exits [get]
func (h *CartExitHandler) List(c *fiber.Ctx) error {
	carts, err := h.history.ListCartExits(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.CartExitResponse, 0, len(carts))
	for _, cart := range carts {
		out = append(out, dto.ToCartExitResponse(cart))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida por carrito por id
// @Tags         cart-exits
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  dto.CartExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart-exits/{id} [get]
func (h *CartExitHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	cart, err := h.history.GetCartExit(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCartExitResponse(cart))
}

// GetPDF godoc
// @Summary      Comprobante PDF de una salida por carrito
// @Tags         cart-exits
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart-exits/{id}/pdf [get]
func (h *CartExitHandler) GetPDF(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	cart, err := h.history.GetCartExit(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	pdfBytes, err := h.voucher.GenerateCartExitPDF(c.Context(), cart)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=comprobante-%s.pdf", cart.RegistryCode))
	return c.Send(pdfBytes)
}

// Update godoc
// @Summary      Corregir salida por carrito
// @Description  Merge superficial de los datos del solicitante; las líneas no se editan.
// @Tags         cart-exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la salida"
// @Param        body  body  dto.UpdateExitRequest  true  "campos a corregir"
// @Success      200  {object}  dto.CartExitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart-exits/{id} [patch]
func (h *CartExitHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cart, err := h.history.UpdateCartExit(c.Context(), id, toUpdateInput(in))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCartExitResponse(cart))
}

// Delete godoc
// @Summary      Eliminar salida por carrito
// @Description  Borra el lote completo; el código de registro emitido no se reutiliza.
// @Tags         cart-exits
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart-exits/{id} [delete]
func (h *CartExitHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	deleted, err := h.history.DeleteCartExit(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
