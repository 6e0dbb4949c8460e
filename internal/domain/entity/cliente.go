package entity

import "time"

// Cliente representa un cliente registrado de la farmacia.
type Cliente struct {
	ID                 string
	Nombre             string
	Apellido           string
	Documento          string // único
	TipoDocumento      string // DNI, NIE, PASAPORTE, CIF
	Telefono           string
	Email              string
	Direccion          string
	Ciudad             string
	CodigoPostal       string
	Observaciones      string
	Activo             bool
	FechaRegistro      time.Time
	FechaActualizacion time.Time
}

// NombreCompleto devuelve nombre y apellido juntos.
func (c *Cliente) NombreCompleto() string {
	return c.Nombre + " " + c.Apellido
}
