package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin  = "admin"
	RolCajero = "cajero"
)

// Usuario representa un usuario del sistema (operador de caja o administrador).
type Usuario struct {
	ID             string
	Username       string // único
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	NombreCompleto string
	Rol            string // admin, cajero
	Activo         bool
	FechaCreacion  time.Time
	UltimoAcceso   *time.Time
}
