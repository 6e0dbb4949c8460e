package repository

import (
	"time"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// UpdateStock persiste solo el stock del producto (motor de reconciliación).
	UpdateStock(productoID string, stock int) error
	ListActivos() ([]*entity.Producto, error)
	BuscarPorNombre(nombre string) ([]*entity.Producto, error)
	BuscarPorCategoria(categoria string) ([]*entity.Producto, error)
	BuscarPorLaboratorio(laboratorio string) ([]*entity.Producto, error)
	// FindStockBajo devuelve productos activos con stock <= stock_minimo.
	FindStockBajo() ([]*entity.Producto, error)
	// FindConStockMenorA devuelve productos activos con stock < umbral.
	FindConStockMenorA(umbral int) ([]*entity.Producto, error)
	// FindVencidosAntesDe devuelve productos activos con vencimiento anterior a la fecha.
	FindVencidosAntesDe(fecha time.Time) ([]*entity.Producto, error)
	// FindVencenEntre devuelve productos activos con vencimiento en [desde, hasta).
	FindVencenEntre(desde, hasta time.Time) ([]*entity.Producto, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Producto, error)
	// Desactivar marca el producto como inactivo (borrado lógico).
	Desactivar(id string) error
}
