package repository

import "github.com/farmaplus/farmacia-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	// UpdatePassword persiste solo el hash de contraseña.
	UpdatePassword(id, passwordHash string) error
	ListAll() ([]*entity.Usuario, error)
}
