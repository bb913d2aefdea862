package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas "Active" excluyen usuarios desactivados; List devuelve todos
// (la administración necesita ver también los inactivos).
type UserRepository interface {
	Create(user *entity.User) (int64, error)
	FindActiveByID(id int64) (*entity.User, error)
	FindActiveByLoginID(loginID string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id int64, passwordHash string) error
	Deactivate(id int64) error
}
