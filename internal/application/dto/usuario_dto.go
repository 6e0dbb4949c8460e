package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CreateUsuarioRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUsuarioRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=8"`
	NombreCompleto string `json:"nombre_completo" validate:"required,min=1,max=100"`
	Rol            string `json:"rol" validate:"required,oneof=admin cajero"`
}

// UpdateUsuarioRequest entrada para actualizar un usuario (sin password).
type UpdateUsuarioRequest struct {
	NombreCompleto *string `json:"nombre_completo"`
	Rol            *string `json:"rol" validate:"omitempty,oneof=admin cajero"`
	Activo         *bool   `json:"activo"`
}

// CambiarPasswordRequest entrada para cambio de contraseña.
// PasswordActual es opcional: un admin puede resetear sin conocerla.
type CambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNueva  string `json:"password_nueva" validate:"required,min=8"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	NombreCompleto string     `json:"nombre_completo"`
	Rol            string     `json:"rol"`
	Activo         bool       `json:"activo"`
	FechaCreacion  time.Time  `json:"fecha_creacion"`
	UltimoAcceso   *time.Time `json:"ultimo_acceso,omitempty"`
}
