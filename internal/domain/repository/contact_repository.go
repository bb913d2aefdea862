package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact (DIP).
type ContactRepository interface {
	Create(contact *entity.Contact) (int64, error)
	GetByID(id int64) (*entity.Contact, error)
	ListByCompany(companyID int64) ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	SoftDelete(id int64) error
}
