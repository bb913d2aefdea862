package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	LoginID  string `json:"login_id" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// UpdateUserRequest entrada para actualizar datos de un usuario.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool  `json:"is_active"`
}

// ResetPasswordRequest entrada para que un admin restablezca un password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	UserID    int64     `json:"user_id"`
	LoginID   string    `json:"login_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
