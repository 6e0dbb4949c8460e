package dto

import "time"

// CreateProveedorRequest entrada para crear un proveedor.
type CreateProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=100"`
	Empresa   string `json:"empresa" validate:"required,min=1,max=200"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
}

// UpdateProveedorRequest entrada para actualizar un proveedor.
type UpdateProveedorRequest struct {
	Nombre    *string `json:"nombre"`
	Empresa   *string `json:"empresa"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Ciudad    *string `json:"ciudad"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Empresa       string    `json:"empresa"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	Direccion     string    `json:"direccion"`
	Ciudad        string    `json:"ciudad"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
