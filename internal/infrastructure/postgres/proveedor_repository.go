package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

const proveedorColumns = `id, nombre, empresa, telefono, email, direccion, ciudad, activo,
	fecha_creacion, fecha_actualizacion`

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (` + proveedorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Empresa, p.Telefono, p.Email, p.Direccion, p.Ciudad, p.Activo,
		p.FechaCreacion, p.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(),
		`SELECT `+proveedorColumns+` FROM proveedores WHERE id = $1`, id,
	).Scan(
		&p.ID, &p.Nombre, &p.Empresa, &p.Telefono, &p.Email, &p.Direccion, &p.Ciudad, &p.Activo,
		&p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de un proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, empresa = $3, telefono = $4, email = $5,
			direccion = $6, ciudad = $7, fecha_actualizacion = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Empresa, p.Telefono, p.Email, p.Direccion, p.Ciudad,
		p.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// ListActivos lista los proveedores activos por empresa.
func (r *ProveedorRepo) ListActivos() ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+proveedorColumns+` FROM proveedores WHERE activo ORDER BY empresa`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Empresa, &p.Telefono, &p.Email, &p.Direccion, &p.Ciudad, &p.Activo,
			&p.FechaCreacion, &p.FechaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Desactivar marca el proveedor como inactivo (borrado lógico).
func (r *ProveedorRepo) Desactivar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE proveedores SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar proveedor: %w", err)
	}
	return nil
}
