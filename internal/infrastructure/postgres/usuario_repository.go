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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, username, password_hash, nombre_completo, rol, activo,
	fecha_creacion, ultimo_acceso`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. El username es único.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.PasswordHash, u.NombreCompleto, u.Rol, u.Activo,
		u.FechaCreacion, u.UltimoAcceso,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getOne(`SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username (para el login).
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	return r.getOne(`SELECT `+usuarioColumns+` FROM usuarios WHERE username = $1`, username)
}

// Update actualiza nombre, rol, estado y último acceso (el hash va por UpdatePassword).
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre_completo = $2, rol = $3, activo = $4, ultimo_acceso = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.NombreCompleto, u.Rol, u.Activo, u.UltimoAcceso,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// UpdatePassword persiste solo el hash de contraseña.
func (r *UsuarioRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListAll lista todos los usuarios, activos o no.
func (r *UsuarioRepo) ListAll() ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+usuarioColumns+` FROM usuarios ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &u.NombreCompleto, &u.Rol, &u.Activo,
			&u.FechaCreacion, &u.UltimoAcceso,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UsuarioRepo) getOne(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.NombreCompleto, &u.Rol, &u.Activo,
		&u.FechaCreacion, &u.UltimoAcceso,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
