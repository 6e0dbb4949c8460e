// Package pedidos implementa el ciclo de vida de los pedidos a proveedor:
// alta en borrador, avance por la cadena de estados, recepción con entrada
// de stock y cancelación.
package pedidos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
	"github.com/farmaplus/farmacia-api/internal/domain/stock"
)

// UseCase caso de uso de pedidos a proveedor.
type UseCase struct {
	txRunner      TxRunner
	pedidoRepo    repository.PedidoRepository
	proveedorRepo repository.ProveedorRepository
	ahora         func() time.Time
}

// NewUseCase construye el caso de uso. ahora permite inyectar un reloj fijo
// en tests; nil usa time.Now.
func NewUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	proveedorRepo repository.ProveedorRepository,
	ahora func() time.Time,
) *UseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &UseCase{
		txRunner:      txRunner,
		pedidoRepo:    pedidoRepo,
		proveedorRepo: proveedorRepo,
		ahora:         ahora,
	}
}

// Crear da de alta un pedido en estado BORRADOR con número autogenerado.
// Valida todas las líneas antes de persistir nada.
func (uc *UseCase) Crear(ctx context.Context, usuarioID string, req *dto.CreatePedidoRequest) (*entity.Pedido, error) {
	if req.ProveedorID == "" || len(req.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.IVA.LessThan(decimal.Zero) || req.Descuento.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	proveedor, err := uc.proveedorRepo.GetByID(req.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil || !proveedor.Activo {
		return nil, fmt.Errorf("proveedor %s: %w", req.ProveedorID, domain.ErrNotFound)
	}
	detalles, err := construirDetalles(req.Detalles)
	if err != nil {
		return nil, err
	}

	ahora := uc.ahora()
	numero, err := uc.numeroLibre(ahora)
	if err != nil {
		return nil, err
	}
	pedido := &entity.Pedido{
		ID:                   uuid.New().String(),
		ProveedorID:          req.ProveedorID,
		NumeroPedido:         numero,
		FechaPedido:          ahora,
		FechaEntregaEstimada: req.FechaEntregaEstimada,
		Estado:               entity.EstadoBorrador,
		Detalles:             detalles,
		IVA:                  req.IVA,
		Descuento:            req.Descuento,
		Observaciones:        req.Observaciones,
		Activo:               true,
		CreadoPor:            usuarioID,
		FechaCreacion:        ahora,
		FechaActualizacion:   ahora,
	}
	pedido.CalcularTotal()
	if err := uc.pedidoRepo.Create(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// Actualizar modifica líneas y cabecera de un pedido. Solo los pedidos en
// BORRADOR son editables; un pedido ya enviado se cambia por transiciones.
func (uc *UseCase) Actualizar(ctx context.Context, id string, req *dto.UpdatePedidoRequest) (*entity.Pedido, error) {
	pedido, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if pedido.Estado != entity.EstadoBorrador {
		return nil, fmt.Errorf("pedido en estado %s: %w", pedido.Estado, domain.ErrInvalidTransition)
	}
	if req.Detalles != nil {
		detalles, err := construirDetalles(req.Detalles)
		if err != nil {
			return nil, err
		}
		pedido.Detalles = detalles
	}
	if req.FechaEntregaEstimada != nil {
		pedido.FechaEntregaEstimada = req.FechaEntregaEstimada
	}
	if req.IVA != nil {
		if req.IVA.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pedido.IVA = *req.IVA
	}
	if req.Descuento != nil {
		if req.Descuento.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pedido.Descuento = *req.Descuento
	}
	if req.Observaciones != nil {
		pedido.Observaciones = *req.Observaciones
	}
	pedido.CalcularTotal()
	pedido.FechaActualizacion = uc.ahora()
	if err := uc.pedidoRepo.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// CambiarEstado aplica una transición del ciclo de vida. Las llegadas a
// RECIBIDO y CANCELADO se enrutan por Recibir y Cancelar para que sus
// efectos (stock, motivo) no se salten.
func (uc *UseCase) CambiarEstado(ctx context.Context, id string, destino entity.EstadoPedido) (*entity.Pedido, error) {
	if !destino.Valida() {
		return nil, domain.ErrInvalidInput
	}
	switch destino {
	case entity.EstadoRecibido:
		return uc.Recibir(ctx, id, nil)
	case entity.EstadoCancelado:
		return uc.Cancelar(ctx, id, "")
	}
	pedido, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if !pedido.Estado.PuedeTransicionarA(destino) {
		return nil, fmt.Errorf("%s -> %s: %w", pedido.Estado, destino, domain.ErrInvalidTransition)
	}
	pedido.Estado = destino
	pedido.FechaActualizacion = uc.ahora()
	if err := uc.pedidoRepo.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// Recibir marca el pedido como RECIBIDO e incrementa el stock de cada línea
// en la misma transacción. cantidades trae la cantidad real recibida por
// detalle; una línea ausente (o nil) se recibe completa.
func (uc *UseCase) Recibir(ctx context.Context, id string, cantidades map[string]int) (*entity.Pedido, error) {
	var recibido *entity.Pedido
	ahora := uc.ahora()
	err := uc.txRunner.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) error {
		pedido, err := pedidoRepo.GetByID(id)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if !pedido.Estado.PuedeTransicionarA(entity.EstadoRecibido) {
			return fmt.Errorf("%s -> %s: %w", pedido.Estado, entity.EstadoRecibido, domain.ErrInvalidTransition)
		}
		for i := range pedido.Detalles {
			detalle := &pedido.Detalles[i]
			if c, ok := cantidades[detalle.ID]; ok {
				if c < 0 {
					return domain.ErrInvalidInput
				}
				detalle.CantidadRecibida = c
			}
			var producto *entity.Producto
			if detalle.ProductoID != "" {
				producto, err = productoRepo.GetForUpdate(detalle.ProductoID)
				if err != nil {
					return err
				}
			}
			stock.AplicarRecepcion(detalle, producto)
			if producto != nil {
				if err := productoRepo.UpdateStock(producto.ID, producto.Stock); err != nil {
					return err
				}
			}
		}
		pedido.Estado = entity.EstadoRecibido
		pedido.FechaEntregaReal = &ahora
		pedido.FechaActualizacion = ahora
		if err := pedidoRepo.Update(pedido); err != nil {
			return err
		}
		recibido = pedido
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recibido, nil
}

// Cancelar pasa el pedido a CANCELADO y anota el motivo en observaciones.
// Un pedido ya recibido o cancelado no admite cancelación.
func (uc *UseCase) Cancelar(ctx context.Context, id, motivo string) (*entity.Pedido, error) {
	pedido, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if !pedido.Estado.PuedeTransicionarA(entity.EstadoCancelado) {
		return nil, fmt.Errorf("%s -> %s: %w", pedido.Estado, entity.EstadoCancelado, domain.ErrInvalidTransition)
	}
	pedido.Estado = entity.EstadoCancelado
	if motivo != "" {
		if pedido.Observaciones != "" {
			pedido.Observaciones += " | "
		}
		pedido.Observaciones += "CANCELADO: " + motivo
	}
	pedido.FechaActualizacion = uc.ahora()
	if err := uc.pedidoRepo.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// ObtenerPorID devuelve el pedido o ErrNotFound.
func (uc *UseCase) ObtenerPorID(id string) (*entity.Pedido, error) {
	return uc.obtener(id)
}

// ListarActivos devuelve todos los pedidos no eliminados, más recientes primero.
func (uc *UseCase) ListarActivos() ([]*entity.Pedido, error) {
	return uc.pedidoRepo.ListActivos()
}

// ListarPorEstado devuelve los pedidos en el estado dado.
func (uc *UseCase) ListarPorEstado(estado entity.EstadoPedido) ([]*entity.Pedido, error) {
	if !estado.Valida() {
		return nil, domain.ErrInvalidInput
	}
	return uc.pedidoRepo.ListByEstado(estado)
}

// ListarPendientes devuelve los pedidos cuyo estado no es terminal.
func (uc *UseCase) ListarPendientes() ([]*entity.Pedido, error) {
	return uc.pedidoRepo.ListPendientes()
}

// Eliminar marca el pedido como inactivo. Solo borradores y pedidos en
// estado terminal se pueden eliminar.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	pedido, err := uc.obtener(id)
	if err != nil {
		return err
	}
	if pedido.Estado != entity.EstadoBorrador && !pedido.Estado.Terminal() {
		return fmt.Errorf("pedido en estado %s: %w", pedido.Estado, domain.ErrInvalidTransition)
	}
	return uc.pedidoRepo.Desactivar(id)
}

// Estadisticas devuelve el conteo de pedidos por situación.
func (uc *UseCase) Estadisticas() (*dto.EstadisticasPedidosResponse, error) {
	pendientes, err := uc.pedidoRepo.ListPendientes()
	if err != nil {
		return nil, err
	}
	recibidos, err := uc.pedidoRepo.CountByEstado(entity.EstadoRecibido)
	if err != nil {
		return nil, err
	}
	cancelados, err := uc.pedidoRepo.CountByEstado(entity.EstadoCancelado)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasPedidosResponse{
		Pendientes: len(pendientes),
		Recibidos:  recibidos,
		Cancelados: cancelados,
	}, nil
}

func (uc *UseCase) obtener(id string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	return pedido, nil
}

// numeroLibre genera el siguiente número PED-YYYYMMDD-XXXX no ocupado del día.
func (uc *UseCase) numeroLibre(fecha time.Time) (string, error) {
	prefijo := "PED-" + fecha.Format("20060102")
	for n := 1; n <= 9999; n++ {
		numero := fmt.Sprintf("%s-%04d", prefijo, n)
		existente, err := uc.pedidoRepo.GetByNumero(numero)
		if err != nil {
			return "", err
		}
		if existente == nil {
			return numero, nil
		}
	}
	return "", fmt.Errorf("sin números de pedido libres para %s", prefijo)
}

func construirDetalles(lineas []dto.LineaPedidoRequest) ([]entity.DetallePedido, error) {
	detalles := make([]entity.DetallePedido, 0, len(lineas))
	for _, linea := range lineas {
		if linea.Cantidad <= 0 || linea.PrecioUnitario.LessThanOrEqual(decimal.Zero) || linea.Descuento.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if linea.ProductoID == "" && linea.NombreProducto == "" {
			return nil, domain.ErrInvalidInput
		}
		detalles = append(detalles, entity.DetallePedido{
			ID:             uuid.New().String(),
			ProductoID:     linea.ProductoID,
			NombreProducto: linea.NombreProducto,
			CodigoProducto: linea.CodigoProducto,
			Cantidad:       linea.Cantidad,
			PrecioUnitario: linea.PrecioUnitario,
			Descuento:      linea.Descuento,
			Observaciones:  linea.Observaciones,
		})
	}
	return detalles, nil
}

// ToResponse convierte un pedido de dominio al DTO de salida.
func ToResponse(p *entity.Pedido) dto.PedidoResponse {
	detalles := make([]dto.DetallePedidoResponse, 0, len(p.Detalles))
	for _, d := range p.Detalles {
		detalles = append(detalles, dto.DetallePedidoResponse{
			ID:               d.ID,
			ProductoID:       d.ProductoID,
			NombreProducto:   d.NombreProducto,
			CodigoProducto:   d.CodigoProducto,
			Cantidad:         d.Cantidad,
			PrecioUnitario:   d.PrecioUnitario,
			Descuento:        d.Descuento,
			Subtotal:         d.Subtotal,
			Recibido:         d.Recibido,
			CantidadRecibida: d.CantidadRecibida,
		})
	}
	return dto.PedidoResponse{
		ID:                   p.ID,
		ProveedorID:          p.ProveedorID,
		NumeroPedido:         p.NumeroPedido,
		FechaPedido:          p.FechaPedido,
		FechaEntregaEstimada: p.FechaEntregaEstimada,
		FechaEntregaReal:     p.FechaEntregaReal,
		Estado:               string(p.Estado),
		EstadoDescripcion:    p.Estado.Descripcion(),
		Detalles:             detalles,
		Subtotal:             p.Subtotal,
		IVA:                  p.IVA,
		Descuento:            p.Descuento,
		Total:                p.Total,
		Observaciones:        p.Observaciones,
		Activo:               p.Activo,
	}
}

// ToListResponse convierte una lista de pedidos al DTO de salida.
func ToListResponse(lista []*entity.Pedido) dto.PedidoListResponse {
	items := make([]dto.PedidoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, ToResponse(p))
	}
	return dto.PedidoListResponse{Items: items, Total: len(items)}
}
