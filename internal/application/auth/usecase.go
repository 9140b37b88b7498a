package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/josehoe716-wq/App-bodega-final/internal/domain"
	pkgjwt "github.com/josehoe716-wq/App-bodega-final/pkg/jwt"
)

// Roles de la aplicación.
const (
	RoleTecnico       = "tecnico"       // retira materiales; acceso directo sin contraseña
	RoleAdministrador = "administrador" // gestiona inventario e historial; exige contraseña
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase valida el acceso por rol y emite el token de sesión.
type UseCase struct {
	adminPasswordHash string
	jwtCfg            JWTConfig
}

// NewUseCase construye el caso de uso. adminPasswordHash es el hash bcrypt de
// la contraseña de administrador (vacío = rol administrador deshabilitado).
func NewUseCase(adminPasswordHash string, jwtCfg JWTConfig) *UseCase {
	return &UseCase{adminPasswordHash: adminPasswordHash, jwtCfg: jwtCfg}
}

// Login valida el rol y la contraseña (solo administrador la requiere) y
// devuelve el JWT de sesión.
func (uc *UseCase) Login(role, password string) (string, error) {
	switch role {
	case RoleTecnico:
		// Acceso directo, sin contraseña
	case RoleAdministrador:
		if uc.adminPasswordHash == "" {
			return "", domain.ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(uc.adminPasswordHash), []byte(password)); err != nil {
			return "", domain.ErrUnauthorized
		}
	default:
		return "", domain.ErrInvalidInput
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
