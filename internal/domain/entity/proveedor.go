package entity

import "time"

// Proveedor representa un proveedor/distribuidor de la farmacia.
type Proveedor struct {
	ID                 string
	Nombre             string // persona de contacto
	Empresa            string
	Telefono           string
	Email              string
	Direccion          string
	Ciudad             string
	Activo             bool
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
