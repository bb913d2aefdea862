package usecase

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ContactUseCase aplica reglas de negocio para personas de contacto.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase construye el caso de uso con el puerto de persistencia.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// ListByCompany devuelve los contactos no borrados de una empresa.
func (uc *ContactUseCase) ListByCompany(companyID int64) (*dto.ContactListResponse, error) {
	contacts, err := uc.contacts.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.ContactListResponse{Contacts: make([]dto.ContactResponse, 0, len(contacts))}
	for _, c := range contacts {
		out.Contacts = append(out.Contacts, *toContactResponse(c))
	}
	return out, nil
}

// Get devuelve un contacto por ID. nil si no existe o está borrado.
func (uc *ContactUseCase) Get(contactID int64) (*dto.ContactResponse, error) {
	contact, err := uc.contacts.GetByID(contactID)
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Create da de alta un contacto en la empresa.
func (uc *ContactUseCase) Create(companyID int64, in dto.SaveContactRequest) (int64, error) {
	now := time.Now()
	contact := contactFromRequest(in)
	contact.CompanyID = companyID
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return uc.contacts.Create(contact)
}

// Update modifica un contacto existente. ErrNotFound si no existe o está borrado.
func (uc *ContactUseCase) Update(contactID int64, in dto.SaveContactRequest) error {
	existing, err := uc.contacts.GetByID(contactID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	contact := contactFromRequest(in)
	contact.ID = contactID
	contact.UpdatedAt = time.Now()
	return uc.contacts.Update(contact)
}

// Delete borra lógicamente un contacto.
func (uc *ContactUseCase) Delete(contactID int64) error {
	existing, err := uc.contacts.GetByID(contactID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.contacts.SoftDelete(contactID)
}

func contactFromRequest(in dto.SaveContactRequest) *entity.Contact {
	return &entity.Contact{
		Name:        norm.NFC.String(in.Name),
		NameKana:    norm.NFC.String(in.NameKana),
		Department:  in.Department,
		Position:    in.Position,
		Email:       in.Email,
		Phone:       in.Phone,
		MobilePhone: in.MobilePhone,
		Notes:       in.Notes,
	}
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ContactID:   c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		NameKana:    c.NameKana,
		Department:  c.Department,
		Position:    c.Position,
		Email:       c.Email,
		Phone:       c.Phone,
		MobilePhone: c.MobilePhone,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
