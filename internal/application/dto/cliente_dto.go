package dto

import "time"

// CreateClienteRequest entrada para registrar un cliente.
type CreateClienteRequest struct {
	Nombre        string `json:"nombre" validate:"required,min=1,max=100"`
	Apellido      string `json:"apellido" validate:"required,min=1,max=100"`
	Documento     string `json:"documento" validate:"required,min=1,max=20"`
	TipoDocumento string `json:"tipo_documento" validate:"required,oneof=DNI NIE PASAPORTE CIF"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email" validate:"omitempty,email"`
	Direccion     string `json:"direccion"`
	Ciudad        string `json:"ciudad"`
	CodigoPostal  string `json:"codigo_postal"`
	Observaciones string `json:"observaciones"`
}

// UpdateClienteRequest entrada para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre        *string `json:"nombre"`
	Apellido      *string `json:"apellido"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Direccion     *string `json:"direccion"`
	Ciudad        *string `json:"ciudad"`
	CodigoPostal  *string `json:"codigo_postal"`
	Observaciones *string `json:"observaciones"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID             string    `json:"id"`
	Nombre         string    `json:"nombre"`
	Apellido       string    `json:"apellido"`
	NombreCompleto string    `json:"nombre_completo"`
	Documento      string    `json:"documento"`
	TipoDocumento  string    `json:"tipo_documento"`
	Telefono       string    `json:"telefono"`
	Email          string    `json:"email"`
	Direccion      string    `json:"direccion"`
	Ciudad         string    `json:"ciudad"`
	CodigoPostal   string    `json:"codigo_postal"`
	Observaciones  string    `json:"observaciones"`
	Activo         bool      `json:"activo"`
	FechaRegistro  time.Time `json:"fecha_registro"`
}
