package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// Seed credenciales del administrador inicial.
type Seed struct {
	LoginID  string
	Password string
	Name     string
	Email    string
}

// AuthUseCase casos de uso de sesión: login, verificación por petición,
// usuario actual y cambio de password.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica login_id/password contra el hash bcrypt y emite un token de
// sesión de 24 horas. Usuario inexistente, inactivo o password incorrecto
// devuelven el mismo ErrInvalidCredentials para no filtrar cuál falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindActiveByLoginID(in.LoginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.LoginID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// VerifyToken valida el token en cada petición: firma y expiración vía JWT, y
// relectura del usuario para revocar sesiones de usuarios desactivados. La
// identidad devuelta sale del payload del token, no de la fila releída.
func (uc *AuthUseCase) VerifyToken(tokenString string) (authz.Identity, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return authz.Identity{}, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindActiveByID(claims.UserID)
	if err != nil {
		return authz.Identity{}, err
	}
	if user == nil {
		return authz.Identity{}, domain.ErrUnauthorized
	}
	return authz.Identity{
		UserID:  claims.UserID,
		LoginID: claims.LoginID,
		Name:    claims.Name,
		Role:    claims.Role,
	}, nil
}

// Me devuelve el usuario actual (releído de la DB, no del token).
func (uc *AuthUseCase) Me(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindActiveByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ChangePassword verifica el password actual y guarda el hash del nuevo.
func (uc *AuthUseCase) ChangePassword(userID int64, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.FindActiveByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(userID, string(hash))
}

// EnsureInitialAdmin crea el administrador inicial si su login aún no existe.
// Se invoca al arrancar para que una instalación vacía tenga acceso.
func (uc *AuthUseCase) EnsureInitialAdmin(seed Seed) (bool, error) {
	existing, err := uc.userRepo.FindActiveByLoginID(seed.LoginID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	now := time.Now()
	admin := &entity.User{
		LoginID:      seed.LoginID,
		PasswordHash: string(hash),
		Name:         seed.Name,
		Email:        seed.Email,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := uc.userRepo.Create(admin); err != nil {
		return false, fmt.Errorf("crear admin inicial: %w", err)
	}
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UserID:    u.ID,
		LoginID:   u.LoginID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
