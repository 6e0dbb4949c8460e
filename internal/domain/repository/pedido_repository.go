package repository

import "github.com/farmaplus/farmacia-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido y sus
// detalles. El pedido es el agregado: las líneas se leen y escriben siempre
// a través de él.
type PedidoRepository interface {
	// Create persiste el pedido con todas sus líneas.
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetByNumero(numero string) (*entity.Pedido, error)
	// Update reescribe cabecera y líneas del pedido.
	Update(pedido *entity.Pedido) error
	ListActivos() ([]*entity.Pedido, error)
	ListByEstado(estado entity.EstadoPedido) ([]*entity.Pedido, error)
	// ListPendientes devuelve pedidos activos con estado distinto de
	// RECIBIDO y CANCELADO, más recientes primero.
	ListPendientes() ([]*entity.Pedido, error)
	CountByEstado(estado entity.EstadoPedido) (int, error)
	Desactivar(id string) error
}
