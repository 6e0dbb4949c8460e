package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create da de alta un proveedor.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" || in.Empresa == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		Empresa:            in.Empresa,
		Telefono:           in.Telefono,
		Email:              in.Email,
		Direccion:          in.Direccion,
		Ciudad:             in.Ciudad,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Update actualiza los datos de contacto de un proveedor.
func (uc *ProveedorUseCase) Update(id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		proveedor.Nombre = *in.Nombre
	}
	if in.Empresa != nil {
		if *in.Empresa == "" {
			return nil, domain.ErrInvalidInput
		}
		proveedor.Empresa = *in.Empresa
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	if in.Email != nil {
		proveedor.Email = *in.Email
	}
	if in.Direccion != nil {
		proveedor.Direccion = *in.Direccion
	}
	if in.Ciudad != nil {
		proveedor.Ciudad = *in.Ciudad
	}
	proveedor.FechaActualizacion = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// List lista los proveedores activos.
func (uc *ProveedorUseCase) List() ([]dto.ProveedorResponse, error) {
	lista, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *toProveedorResponse(p))
	}
	return items, nil
}

// Delete desactiva un proveedor (borrado lógico).
func (uc *ProveedorUseCase) Delete(id string) error {
	if _, err := uc.obtener(id); err != nil {
		return err
	}
	return uc.repo.Desactivar(id)
}

func (uc *ProveedorUseCase) obtener(id string) (*entity.Proveedor, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	return proveedor, nil
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Empresa:       p.Empresa,
		Telefono:      p.Telefono,
		Email:         p.Email,
		Direccion:     p.Direccion,
		Ciudad:        p.Ciudad,
		Activo:        p.Activo,
		FechaCreacion: p.FechaCreacion,
	}
}
