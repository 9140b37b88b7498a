package dto

// LoginRequest selección de rol al entrar a la aplicación. El técnico entra
// sin contraseña; el administrador la requiere.
type LoginRequest struct {
	Role     string `json:"role"` // tecnico | administrador
	Password string `json:"password"`
}

// LoginResponse token de sesión emitido.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
