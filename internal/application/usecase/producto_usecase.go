package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/alertas"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del catálogo. El stock
// no se edita aquí: lo mueven las ventas y las recepciones de pedido.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto nuevo. El código debe ser único en el catálogo.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThanOrEqual(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	stockMinimo := entity.StockMinimoPorDefecto
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		stockMinimo = *in.StockMinimo
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		Descripcion:        in.Descripcion,
		Codigo:             in.Codigo,
		Precio:             in.Precio,
		Stock:              in.Stock,
		StockMinimo:        stockMinimo,
		Laboratorio:        in.Laboratorio,
		Categoria:          in.Categoria,
		FechaVencimiento:   in.FechaVencimiento,
		RequiereReceta:     in.RequiereReceta,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByCodigo obtiene un producto por su código único.
func (uc *ProductoUseCase) GetByCodigo(codigo string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Update actualiza los datos de catálogo de un producto.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.StockMinimo = *in.StockMinimo
	}
	if in.Laboratorio != nil {
		producto.Laboratorio = *in.Laboratorio
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.FechaVencimiento != nil {
		producto.FechaVencimiento = in.FechaVencimiento
	}
	if in.RequiereReceta != nil {
		producto.RequiereReceta = *in.RequiereReceta
	}
	producto.FechaActualizacion = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos activos del catálogo.
func (uc *ProductoUseCase) List() (*dto.ProductoListResponse, error) {
	lista, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return toProductoListResponse(lista), nil
}

// Buscar busca productos activos por nombre, categoría o laboratorio.
// Los filtros vacíos se ignoran; sin filtros equivale a List.
func (uc *ProductoUseCase) Buscar(nombre, categoria, laboratorio string) (*dto.ProductoListResponse, error) {
	var (
		lista []*entity.Producto
		err   error
	)
	switch {
	case nombre != "":
		lista, err = uc.repo.BuscarPorNombre(nombre)
	case categoria != "":
		lista, err = uc.repo.BuscarPorCategoria(categoria)
	case laboratorio != "":
		lista, err = uc.repo.BuscarPorLaboratorio(laboratorio)
	default:
		lista, err = uc.repo.ListActivos()
	}
	if err != nil {
		return nil, err
	}
	return toProductoListResponse(lista), nil
}

// StockBajo lista los productos activos en o por debajo de su stock mínimo.
func (uc *ProductoUseCase) StockBajo() (*dto.ProductoListResponse, error) {
	lista, err := uc.repo.FindStockBajo()
	if err != nil {
		return nil, err
	}
	return toProductoListResponse(lista), nil
}

// Caducados lista los productos activos con fecha de vencimiento ya pasada.
func (uc *ProductoUseCase) Caducados() (*dto.ProductoListResponse, error) {
	hoy := time.Now()
	lista, err := uc.repo.FindVencidosAntesDe(hoy)
	if err != nil {
		return nil, err
	}
	return toProductoListResponse(lista), nil
}

// ProximosACaducar lista los productos activos que vencen dentro de la
// ventana de aviso de caducidad.
func (uc *ProductoUseCase) ProximosACaducar() (*dto.ProductoListResponse, error) {
	hoy := time.Now()
	lista, err := uc.repo.FindVencenEntre(hoy, hoy.AddDate(0, 0, alertas.DiasAvisoCaducidad))
	if err != nil {
		return nil, err
	}
	return toProductoListResponse(lista), nil
}

// Delete desactiva un producto (borrado lógico; el histórico de ventas lo
// sigue referenciando).
func (uc *ProductoUseCase) Delete(id string) error {
	if _, err := uc.obtener(id); err != nil {
		return err
	}
	return uc.repo.Desactivar(id)
}

func (uc *ProductoUseCase) obtener(id string) (*entity.Producto, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return producto, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		Codigo:           p.Codigo,
		Precio:           p.Precio,
		Stock:            p.Stock,
		StockMinimo:      p.StockMinimo,
		StockBajo:        p.StockBajo(),
		Laboratorio:      p.Laboratorio,
		Categoria:        p.Categoria,
		FechaVencimiento: p.FechaVencimiento,
		RequiereReceta:   p.RequiereReceta,
		Activo:           p.Activo,
		FechaCreacion:    p.FechaCreacion,
	}
}

func toProductoListResponse(lista []*entity.Producto) *dto.ProductoListResponse {
	items := make([]dto.ProductoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{Items: items, Total: len(items)}
}
