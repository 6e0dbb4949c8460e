package memoria

import (
	"context"

	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// TxRunner en memoria: no hay transacción real, la función recibe las
// mismas vistas del almacén. Suficiente para tests de casos de uso; la
// atomicidad de verdad la aporta el adaptador PostgreSQL.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén dado.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunVenta ejecuta fn con los repositorios de venta y producto del almacén.
func (t *TxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return fn(t.store.Ventas(), t.store.Productos())
}

// RunPedido ejecuta fn con los repositorios de pedido y producto del almacén.
func (t *TxRunner) RunPedido(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return fn(t.store.Pedidos(), t.store.Productos())
}
