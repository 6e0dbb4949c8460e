package pedidos

import (
	"context"

	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La recepción de un pedido actualiza pedido y
// stock en la misma transacción.
type TxRunner interface {
	RunPedido(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
