package repository

import "github.com/farmaplus/farmacia-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByDocumento(documento string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	ListActivos() ([]*entity.Cliente, error)
	// Buscar filtra por nombre, apellido o documento (contiene, sin mayúsculas).
	Buscar(termino string) ([]*entity.Cliente, error)
	Desactivar(id string) error
}
