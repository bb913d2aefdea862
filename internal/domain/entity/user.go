package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario interno del CRM (vendedor o administrador).
// La desactivación es lógica: IsActive = false; la fila nunca se borra.
type User struct {
	ID           int64
	LoginID      string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	Name         string
	Email        string
	Role         string // admin | user
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin informa si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
