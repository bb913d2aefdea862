package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para la administración de usuarios.
// Todas estas operaciones están reservadas al rol admin (gate en el router).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve todos los usuarios, incluidos los desactivados.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	return out, nil
}

// Get devuelve un usuario activo por ID. nil si no existe o está desactivado.
func (uc *UserUseCase) Get(userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.FindActiveByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Create da de alta un usuario con el password hasheado con bcrypt.
// ErrLoginIDTaken si el login ya está en uso.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (int64, error) {
	existing, err := uc.users.FindActiveByLoginID(in.LoginID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrLoginIDTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	user := &entity.User{
		LoginID:      in.LoginID,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.users.Create(user)
}

// Update modifica nombre, email, rol y estado de un usuario.
func (uc *UserUseCase) Update(userID int64, in dto.UpdateUserRequest) error {
	existing, err := uc.users.FindActiveByID(userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	existing.Name = in.Name
	existing.Email = in.Email
	if in.Role != "" {
		existing.Role = in.Role
	}
	if in.IsActive != nil {
		existing.IsActive = *in.IsActive
	}
	existing.UpdatedAt = time.Now()
	return uc.users.Update(existing)
}

// ResetPassword fija un password nuevo sin pedir el actual (acción de admin).
func (uc *UserUseCase) ResetPassword(userID int64, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(userID, string(hash))
}

// Deactivate desactiva lógicamente un usuario; la fila persiste con
// is_active = false. Un admin no puede desactivarse a sí mismo.
func (uc *UserUseCase) Deactivate(targetID, requesterID int64) error {
	if targetID == requesterID {
		return domain.ErrSelfDeactivation
	}
	return uc.users.Deactivate(targetID)
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
