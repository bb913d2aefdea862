package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Todas las consultas excluyen empresas con borrado lógico. El parámetro
// search filtra por substring sobre nombre e industria.
type CompanyRepository interface {
	Create(company *entity.Company) (int64, error)
	GetByID(id int64) (*entity.Company, error)
	List(search string, limit, offset int) ([]*entity.Company, error)
	ListByUser(userID int64, search string, limit, offset int) ([]*entity.Company, error)
	Count(search string) (int, error)
	CountByUser(userID int64, search string) (int, error)
	Update(company *entity.Company) error
	SoftDelete(id int64) error
}
