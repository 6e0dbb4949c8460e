package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// Tipos de documento de identidad admitidos.
var tiposDocumento = map[string]bool{
	"DNI": true, "NIE": true, "PASAPORTE": true, "CIF": true,
}

// ClienteUseCase casos de uso CRUD para clientes registrados.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create registra un cliente. El documento debe ser único.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Apellido == "" || in.Documento == "" {
		return nil, domain.ErrInvalidInput
	}
	if !tiposDocumento[in.TipoDocumento] {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByDocumento(in.Documento)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		Apellido:           in.Apellido,
		Documento:          in.Documento,
		TipoDocumento:      in.TipoDocumento,
		Telefono:           in.Telefono,
		Email:              in.Email,
		Direccion:          in.Direccion,
		Ciudad:             in.Ciudad,
		CodigoPostal:       in.CodigoPostal,
		Observaciones:      in.Observaciones,
		Activo:             true,
		FechaRegistro:      now,
		FechaActualizacion: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByDocumento obtiene un cliente por su documento de identidad.
func (uc *ClienteUseCase) GetByDocumento(documento string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByDocumento(documento)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza los datos de un cliente. Documento y tipo no cambian.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		if *in.Apellido == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Ciudad != nil {
		cliente.Ciudad = *in.Ciudad
	}
	if in.CodigoPostal != nil {
		cliente.CodigoPostal = *in.CodigoPostal
	}
	if in.Observaciones != nil {
		cliente.Observaciones = *in.Observaciones
	}
	cliente.FechaActualizacion = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista los clientes activos.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	lista, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return toClienteListResponse(lista), nil
}

// Buscar busca clientes activos por nombre, apellido o documento.
func (uc *ClienteUseCase) Buscar(termino string) ([]dto.ClienteResponse, error) {
	if termino == "" {
		return uc.List()
	}
	lista, err := uc.repo.Buscar(termino)
	if err != nil {
		return nil, err
	}
	return toClienteListResponse(lista), nil
}

// Delete desactiva un cliente (borrado lógico).
func (uc *ClienteUseCase) Delete(id string) error {
	if _, err := uc.obtener(id); err != nil {
		return err
	}
	return uc.repo.Desactivar(id)
}

func (uc *ClienteUseCase) obtener(id string) (*entity.Cliente, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return cliente, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:             c.ID,
		Nombre:         c.Nombre,
		Apellido:       c.Apellido,
		NombreCompleto: c.NombreCompleto(),
		Documento:      c.Documento,
		TipoDocumento:  c.TipoDocumento,
		Telefono:       c.Telefono,
		Email:          c.Email,
		Direccion:      c.Direccion,
		Ciudad:         c.Ciudad,
		CodigoPostal:   c.CodigoPostal,
		Observaciones:  c.Observaciones,
		Activo:         c.Activo,
		FechaRegistro:  c.FechaRegistro,
	}
}

func toClienteListResponse(lista []*entity.Cliente) []dto.ClienteResponse {
	items := make([]dto.ClienteResponse, 0, len(lista))
	for _, c := range lista {
		items = append(items, *toClienteResponse(c))
	}
	return items
}
