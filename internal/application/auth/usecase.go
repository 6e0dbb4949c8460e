// Package auth implementa la autenticación de usuarios: login con bcrypt y
// emisión de tokens JWT.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
	"github.com/farmaplus/farmacia-api/pkg/jwt"
)

// Config parámetros de emisión del token.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	cfg         Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, cfg Config) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, cfg: cfg}
}

// Login verifica las credenciales y devuelve el token con el usuario.
// Credenciales incorrectas y usuario inexistente devuelven el mismo error
// para no revelar qué usernames existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.cfg.Secret, usuario.ID, usuario.Username, usuario.Rol, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	usuario.UltimoAcceso = &ahora
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:             usuario.ID,
			Username:       usuario.Username,
			NombreCompleto: usuario.NombreCompleto,
			Rol:            usuario.Rol,
			Activo:         usuario.Activo,
			FechaCreacion:  usuario.FechaCreacion,
			UltimoAcceso:   usuario.UltimoAcceso,
		},
	}, nil
}
