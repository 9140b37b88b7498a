package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/auth"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/dto"
)

// AuthHandler maneja el inicio de sesión por rol.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión por rol
// @Description  tecnico entra sin contraseña; administrador requiere la suya.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "role, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, err := h.uc.Login(in.Role, in.Password)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, Role: in.Role})
}
