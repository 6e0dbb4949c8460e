package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, descripcion, codigo, precio, stock, stock_minimo,
	laboratorio, categoria, fecha_vencimiento, requiere_receta, activo,
	fecha_creacion, fecha_actualizacion`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Codigo, p.Precio, p.Stock, p.StockMinimo,
		p.Laboratorio, p.Categoria, p.FechaVencimiento, p.RequiereReceta, p.Activo,
		p.FechaCreacion, p.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.getOne(`SELECT `+productoColumns+` FROM productos WHERE id = $1`, id)
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.getOne(`SELECT `+productoColumns+` FROM productos WHERE codigo = $1`, codigo)
}

// GetForUpdate obtiene el producto bloqueando la fila. Solo tiene sentido
// dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.getOne(`SELECT `+productoColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

// Update actualiza los datos de catálogo de un producto (el stock va por UpdateStock).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio = $4, stock_minimo = $5,
			laboratorio = $6, categoria = $7, fecha_vencimiento = $8, requiere_receta = $9,
			fecha_actualizacion = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.StockMinimo,
		p.Laboratorio, p.Categoria, p.FechaVencimiento, p.RequiereReceta,
		p.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock persiste solo el stock del producto (motor de reconciliación).
func (r *ProductoRepo) UpdateStock(productoID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, fecha_actualizacion = now() WHERE id = $1`,
		productoID, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// ListActivos lista los productos activos por nombre.
func (r *ProductoRepo) ListActivos() ([]*entity.Producto, error) {
	return r.list(`SELECT `+productoColumns+` FROM productos WHERE activo ORDER BY nombre`)
}

// BuscarPorNombre busca productos activos por coincidencia parcial de nombre.
func (r *ProductoRepo) BuscarPorNombre(nombre string) ([]*entity.Producto, error) {
	return r.list(
		`SELECT `+productoColumns+` FROM productos WHERE activo AND nombre ILIKE $1 ORDER BY nombre`,
		"%"+nombre+"%",
	)
}

// BuscarPorCategoria busca productos activos por categoría exacta.
func (r *ProductoRepo) BuscarPorCategoria(categoria string) ([]*entity.Producto, error) {
	return r.list(
		`SELECT `+productoColumns+` FROM productos WHERE activo AND categoria = $1 ORDER BY nombre`,
		categoria,
	)
}

// BuscarPorLaboratorio busca productos activos por laboratorio exacto.
func (r *ProductoRepo) BuscarPorLaboratorio(laboratorio string) ([]*entity.Producto, error) {
	return r.list(
		`SELECT `+productoColumns+` FROM productos WHERE activo AND laboratorio = $1 ORDER BY nombre`,
		laboratorio,
	)
}

// FindStockBajo devuelve productos activos con stock <= stock_minimo.
func (r *ProductoRepo) FindStockBajo() ([]*entity.Producto, error) {
	return r.list(`SELECT ` + productoColumns + ` FROM productos WHERE activo AND stock <= stock_minimo ORDER BY nombre`)
}

// FindConStockMenorA devuelve productos activos con stock < umbral.
func (r *ProductoRepo) FindConStockMenorA(umbral int) ([]*entity.Producto, error) {
	return r.list(
		`SELECT `+productoColumns+` FROM productos WHERE activo AND stock < $1 ORDER BY nombre`,
		umbral,
	)
}

// FindVencidosAntesDe devuelve productos activos con vencimiento anterior a la fecha.
func (r *ProductoRepo) FindVencidosAntesDe(fecha time.Time) ([]*entity.Producto, error) {
	return r.list(
		`SELECT `+productoColumns+` FROM productos
		 WHERE activo AND fecha_vencimiento IS NOT NULL AND fecha_vencimiento < $1
		 ORDER BY fecha_vencimiento`,
		fecha,
	)
}

// FindVencenEntre devuelve productos activos con vencimiento en [desde, hasta).
func (r *ProductoRepo) FindVencenEntre(desde, hasta time.Time) ([]*entity.Producto, error) {
	return r.list(
		`SELECT `+productoColumns+` FROM productos
		 WHERE activo AND fecha_vencimiento IS NOT NULL AND fecha_vencimiento >= $1 AND fecha_vencimiento < $2
		 ORDER BY fecha_vencimiento`,
		desde, hasta,
	)
}

// Desactivar marca el producto como inactivo (borrado lógico).
func (r *ProductoRepo) Desactivar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) getOne(query string, args ...any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Codigo, &p.Precio, &p.Stock, &p.StockMinimo,
		&p.Laboratorio, &p.Categoria, &p.FechaVencimiento, &p.RequiereReceta, &p.Activo,
		&p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) list(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.Codigo, &p.Precio, &p.Stock, &p.StockMinimo,
			&p.Laboratorio, &p.Categoria, &p.FechaVencimiento, &p.RequiereReceta, &p.Activo,
			&p.FechaCreacion, &p.FechaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
