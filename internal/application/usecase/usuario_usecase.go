package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios del sistema. Solo accesible
// para el rol admin; la autenticación vive en el paquete auth.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create da de alta un usuario con la contraseña hasheada con bcrypt.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || len(in.Password) < 8 || in.NombreCompleto == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rol != entity.RolAdmin && in.Rol != entity.RolCajero {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:             uuid.New().String(),
		Username:       in.Username,
		PasswordHash:   string(hash),
		NombreCompleto: in.NombreCompleto,
		Rol:            in.Rol,
		Activo:         true,
		FechaCreacion:  time.Now(),
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Update actualiza nombre, rol o estado de un usuario.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.obtener(id)
	if err != nil {
		return nil, err
	}
	if in.NombreCompleto != nil {
		if *in.NombreCompleto == "" {
			return nil, domain.ErrInvalidInput
		}
		usuario.NombreCompleto = *in.NombreCompleto
	}
	if in.Rol != nil {
		if *in.Rol != entity.RolAdmin && *in.Rol != entity.RolCajero {
			return nil, domain.ErrInvalidInput
		}
		usuario.Rol = *in.Rol
	}
	if in.Activo != nil {
		usuario.Activo = *in.Activo
	}
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// CambiarPassword cambia la contraseña. Si in.PasswordActual viene informada
// se verifica contra el hash vigente; vacía significa reseteo por un admin.
func (uc *UsuarioUseCase) CambiarPassword(id string, in dto.CambiarPasswordRequest) error {
	if len(in.PasswordNueva) < 8 {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.obtener(id)
	if err != nil {
		return err
	}
	if in.PasswordActual != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.PasswordActual)); err != nil {
			return domain.ErrUnauthorized
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(id, string(hash))
}

// List lista todos los usuarios, activos o no.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	lista, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(lista))
	for _, u := range lista {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

func (uc *UsuarioUseCase) obtener(id string) (*entity.Usuario, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return usuario, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:             u.ID,
		Username:       u.Username,
		NombreCompleto: u.NombreCompleto,
		Rol:            u.Rol,
		Activo:         u.Activo,
		FechaCreacion:  u.FechaCreacion,
		UltimoAcceso:   u.UltimoAcceso,
	}
}
