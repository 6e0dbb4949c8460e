package repository

import "github.com/farmaplus/farmacia-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	ListActivos() ([]*entity.Proveedor, error)
	Desactivar(id string) error
}
