package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, proveedor_id, numero_pedido, fecha_pedido, fecha_entrega_estimada,
	fecha_entrega_real, estado, subtotal, iva, descuento, total, observaciones, activo,
	creado_por, fecha_creacion, fecha_actualizacion`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL
// (usable con pool o tx). El pedido es el agregado: las líneas se leen y
// escriben siempre junto con su cabecera.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste el pedido con todas sus líneas.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (` + pedidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProveedorID, p.NumeroPedido, p.FechaPedido, p.FechaEntregaEstimada,
		p.FechaEntregaReal, p.Estado, p.Subtotal, p.IVA, p.Descuento, p.Total,
		p.Observaciones, p.Activo, p.CreadoPor, p.FechaCreacion, p.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return r.insertDetalles(p.ID, p.Detalles)
}

// Update reescribe cabecera y líneas del pedido.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	query := `
		UPDATE pedidos SET fecha_entrega_estimada = $2, fecha_entrega_real = $3, estado = $4,
			subtotal = $5, iva = $6, descuento = $7, total = $8, observaciones = $9,
			activo = $10, fecha_actualizacion = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FechaEntregaEstimada, p.FechaEntregaReal, p.Estado,
		p.Subtotal, p.IVA, p.Descuento, p.Total, p.Observaciones,
		p.Activo, p.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM pedido_detalles WHERE pedido_id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete detalles pedido: %w", err)
	}
	return r.insertDetalles(p.ID, p.Detalles)
}

// GetByID obtiene un pedido completo (cabecera + líneas) por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.getOne(`SELECT `+pedidoColumns+` FROM pedidos WHERE id = $1`, id)
}

// GetByNumero obtiene un pedido completo por su número único.
func (r *PedidoRepo) GetByNumero(numero string) (*entity.Pedido, error) {
	return r.getOne(`SELECT `+pedidoColumns+` FROM pedidos WHERE numero_pedido = $1`, numero)
}

// ListActivos lista los pedidos no eliminados, más recientes primero.
func (r *PedidoRepo) ListActivos() ([]*entity.Pedido, error) {
	return r.list(`SELECT ` + pedidoColumns + ` FROM pedidos WHERE activo ORDER BY fecha_pedido DESC`)
}

// ListByEstado lista los pedidos activos en el estado dado.
func (r *PedidoRepo) ListByEstado(estado entity.EstadoPedido) ([]*entity.Pedido, error) {
	return r.list(
		`SELECT `+pedidoColumns+` FROM pedidos WHERE activo AND estado = $1 ORDER BY fecha_pedido DESC`,
		estado,
	)
}

// ListPendientes lista los pedidos activos con estado no terminal.
func (r *PedidoRepo) ListPendientes() ([]*entity.Pedido, error) {
	return r.list(
		`SELECT `+pedidoColumns+` FROM pedidos
		 WHERE activo AND estado NOT IN ($1, $2) ORDER BY fecha_pedido DESC`,
		entity.EstadoRecibido, entity.EstadoCancelado,
	)
}

// CountByEstado cuenta los pedidos activos en el estado dado.
func (r *PedidoRepo) CountByEstado(estado entity.EstadoPedido) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM pedidos WHERE activo AND estado = $1`, estado).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pedidos: %w", err)
	}
	return n, nil
}

// Desactivar marca el pedido como inactivo (borrado lógico).
func (r *PedidoRepo) Desactivar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar pedido: %w", err)
	}
	return nil
}

func (r *PedidoRepo) insertDetalles(pedidoID string, detalles []entity.DetallePedido) error {
	query := `
		INSERT INTO pedido_detalles (id, pedido_id, producto_id, nombre_producto, codigo_producto,
			cantidad, precio_unitario, descuento, subtotal, observaciones, recibido, cantidad_recibida)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, d := range detalles {
		_, err := r.q.Exec(context.Background(), query,
			d.ID, pedidoID, nullIfEmpty(d.ProductoID), d.NombreProducto, d.CodigoProducto,
			d.Cantidad, d.PrecioUnitario, d.Descuento, d.Subtotal, d.Observaciones,
			d.Recibido, d.CantidadRecibida,
		)
		if err != nil {
			return fmt.Errorf("insert detalle pedido: %w", err)
		}
	}
	return nil
}

func (r *PedidoRepo) cargarDetalles(p *entity.Pedido) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, producto_id, nombre_producto, codigo_producto, cantidad,
		       precio_unitario, descuento, subtotal, observaciones, recibido, cantidad_recibida
		FROM pedido_detalles WHERE pedido_id = $1 ORDER BY nombre_producto`, p.ID)
	if err != nil {
		return fmt.Errorf("list detalles pedido: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.DetallePedido
		var productoID *string
		if err := rows.Scan(
			&d.ID, &productoID, &d.NombreProducto, &d.CodigoProducto, &d.Cantidad,
			&d.PrecioUnitario, &d.Descuento, &d.Subtotal, &d.Observaciones,
			&d.Recibido, &d.CantidadRecibida,
		); err != nil {
			return fmt.Errorf("scan detalle pedido: %w", err)
		}
		if productoID != nil {
			d.ProductoID = *productoID
		}
		p.Detalles = append(p.Detalles, d)
	}
	return rows.Err()
}

func (r *PedidoRepo) scanCabecera(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	err := row.Scan(
		&p.ID, &p.ProveedorID, &p.NumeroPedido, &p.FechaPedido, &p.FechaEntregaEstimada,
		&p.FechaEntregaReal, &p.Estado, &p.Subtotal, &p.IVA, &p.Descuento, &p.Total,
		&p.Observaciones, &p.Activo, &p.CreadoPor, &p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PedidoRepo) getOne(query string, args ...any) (*entity.Pedido, error) {
	p, err := r.scanCabecera(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	if err := r.cargarDetalles(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PedidoRepo) list(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		p, err := r.scanCabecera(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	for _, p := range list {
		if err := r.cargarDetalles(p); err != nil {
			return nil, err
		}
	}
	return list, nil
}
