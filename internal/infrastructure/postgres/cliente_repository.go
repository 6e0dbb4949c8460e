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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nombre, apellido, documento, tipo_documento, telefono, email,
	direccion, ciudad, codigo_postal, observaciones, activo, fecha_registro, fecha_actualizacion`

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente. El documento es único.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellido, c.Documento, c.TipoDocumento, c.Telefono, c.Email,
		c.Direccion, c.Ciudad, c.CodigoPostal, c.Observaciones, c.Activo,
		c.FechaRegistro, c.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.getOne(`SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id)
}

// GetByDocumento obtiene un cliente por su documento de identidad.
func (r *ClienteRepo) GetByDocumento(documento string) (*entity.Cliente, error) {
	return r.getOne(`SELECT `+clienteColumns+` FROM clientes WHERE documento = $1`, documento)
}

// Update actualiza los datos de un cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, apellido = $3, telefono = $4, email = $5,
			direccion = $6, ciudad = $7, codigo_postal = $8, observaciones = $9,
			fecha_actualizacion = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellido, c.Telefono, c.Email,
		c.Direccion, c.Ciudad, c.CodigoPostal, c.Observaciones,
		c.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// ListActivos lista los clientes activos por apellido.
func (r *ClienteRepo) ListActivos() ([]*entity.Cliente, error) {
	return r.list(`SELECT ` + clienteColumns + ` FROM clientes WHERE activo ORDER BY apellido, nombre`)
}

// Buscar busca clientes activos por nombre, apellido o documento.
func (r *ClienteRepo) Buscar(termino string) ([]*entity.Cliente, error) {
	patron := "%" + termino + "%"
	return r.list(
		`SELECT `+clienteColumns+` FROM clientes
		 WHERE activo AND (nombre ILIKE $1 OR apellido ILIKE $1 OR documento ILIKE $1)
		 ORDER BY apellido, nombre`,
		patron,
	)
}

// Desactivar marca el cliente como inactivo (borrado lógico).
func (r *ClienteRepo) Desactivar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) getOne(query string, args ...any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Documento, &c.TipoDocumento, &c.Telefono, &c.Email,
		&c.Direccion, &c.Ciudad, &c.CodigoPostal, &c.Observaciones, &c.Activo,
		&c.FechaRegistro, &c.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) list(query string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.Nombre, &c.Apellido, &c.Documento, &c.TipoDocumento, &c.Telefono, &c.Email,
			&c.Direccion, &c.Ciudad, &c.CodigoPostal, &c.Observaciones, &c.Activo,
			&c.FechaRegistro, &c.FechaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
