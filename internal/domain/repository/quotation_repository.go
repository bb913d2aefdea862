package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation (DIP).
type QuotationRepository interface {
	Create(quotation *entity.Quotation) (int64, error)
	GetByID(id int64) (*entity.Quotation, error)
	ListByCompany(companyID int64) ([]*entity.Quotation, error)
	ListAll(limit, offset int) ([]*entity.Quotation, error)
	// Update solo toca los metadatos editables (título, monto, fecha, notas);
	// el archivo en disco no se reemplaza.
	Update(quotation *entity.Quotation) error
	SoftDelete(id int64) error
}
