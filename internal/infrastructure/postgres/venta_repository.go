package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, fecha, subtotal, descuento, total, metodo_pago, cliente,
	observaciones, usuario_id, activo`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas se escriben una sola vez con la venta;
// la anulación solo toca la cabecera.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la venta con todas sus líneas.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (` + ventaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Fecha, v.Subtotal, v.Descuento, v.Total, v.MetodoPago, v.Cliente,
		v.Observaciones, v.UsuarioID, v.Activo,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	detQuery := `
		INSERT INTO venta_detalles (id, venta_id, producto_id, nombre_producto, cantidad,
			precio_unitario, descuento, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, d := range v.Detalles {
		_, err := r.q.Exec(context.Background(), detQuery,
			d.ID, v.ID, d.ProductoID, d.NombreProducto, d.Cantidad,
			d.PrecioUnitario, d.Descuento, d.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert detalle venta: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta completa (cabecera + líneas) por ID.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	v, err := r.scanCabecera(r.q.QueryRow(context.Background(),
		`SELECT `+ventaColumns+` FROM ventas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	if err := r.cargarDetalles(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update reescribe la cabecera (anulación, observaciones); las líneas no cambian.
func (r *VentaRepo) Update(v *entity.Venta) error {
	query := `
		UPDATE ventas SET descuento = $2, total = $3, cliente = $4, observaciones = $5, activo = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Descuento, v.Total, v.Cliente, v.Observaciones, v.Activo,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// ListActivas lista las ventas no anuladas, más recientes primero.
func (r *VentaRepo) ListActivas() ([]*entity.Venta, error) {
	return r.list(`SELECT ` + ventaColumns + ` FROM ventas WHERE activo ORDER BY fecha DESC`)
}

// ListPorRango lista ventas activas con fecha en [desde, hasta).
func (r *VentaRepo) ListPorRango(desde, hasta time.Time) ([]*entity.Venta, error) {
	return r.list(
		`SELECT `+ventaColumns+` FROM ventas WHERE activo AND fecha >= $1 AND fecha < $2 ORDER BY fecha DESC`,
		desde, hasta,
	)
}

// ListPorMetodoPago lista ventas activas pagadas con el método dado.
func (r *VentaRepo) ListPorMetodoPago(metodoPago string) ([]*entity.Venta, error) {
	return r.list(
		`SELECT `+ventaColumns+` FROM ventas WHERE activo AND metodo_pago = $1 ORDER BY fecha DESC`,
		metodoPago,
	)
}

// ListUltimas lista las n ventas activas más recientes.
func (r *VentaRepo) ListUltimas(n int) ([]*entity.Venta, error) {
	return r.list(
		`SELECT `+ventaColumns+` FROM ventas WHERE activo ORDER BY fecha DESC LIMIT $1`, n)
}

// TotalPorRango suma el total de ventas activas en [desde, hasta).
func (r *VentaRepo) TotalPorRango(desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(total), 0) FROM ventas WHERE activo AND fecha >= $1 AND fecha < $2`,
		desde, hasta,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total ventas: %w", err)
	}
	return total, nil
}

// CountPorRango cuenta las ventas activas en [desde, hasta).
func (r *VentaRepo) CountPorRango(desde, hasta time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM ventas WHERE activo AND fecha >= $1 AND fecha < $2`,
		desde, hasta,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ventas: %w", err)
	}
	return n, nil
}

func (r *VentaRepo) scanCabecera(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.Fecha, &v.Subtotal, &v.Descuento, &v.Total, &v.MetodoPago, &v.Cliente,
		&v.Observaciones, &v.UsuarioID, &v.Activo,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VentaRepo) cargarDetalles(v *entity.Venta) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, producto_id, nombre_producto, cantidad, precio_unitario, descuento, subtotal
		FROM venta_detalles WHERE venta_id = $1 ORDER BY nombre_producto`, v.ID)
	if err != nil {
		return fmt.Errorf("list detalles venta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(
			&d.ID, &d.ProductoID, &d.NombreProducto, &d.Cantidad,
			&d.PrecioUnitario, &d.Descuento, &d.Subtotal,
		); err != nil {
			return fmt.Errorf("scan detalle venta: %w", err)
		}
		v.Detalles = append(v.Detalles, d)
	}
	return rows.Err()
}

func (r *VentaRepo) list(query string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		v, err := r.scanCabecera(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	for _, v := range list {
		if err := r.cargarDetalles(v); err != nil {
			return nil, err
		}
	}
	return list, nil
}
