package dto

import "time"

// SaveContactRequest entrada para crear o actualizar una persona de contacto.
type SaveContactRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	NameKana    string `json:"name_kana" validate:"omitempty,max=100"`
	Department  string `json:"department" validate:"omitempty,max=100"`
	Position    string `json:"position" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	MobilePhone string `json:"mobile_phone" validate:"omitempty,max=20"`
	Notes       string `json:"notes"`
}

// ContactResponse salida de una persona de contacto.
type ContactResponse struct {
	ContactID   int64     `json:"contact_id"`
	CompanyID   int64     `json:"company_id"`
	Name        string    `json:"name"`
	NameKana    string    `json:"name_kana"`
	Department  string    `json:"department"`
	Position    string    `json:"position"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	MobilePhone string    `json:"mobile_phone"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactListResponse listado de contactos de una empresa.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// CreatedContactResponse confirmación de alta con el ID generado.
type CreatedContactResponse struct {
	Message   string `json:"message"`
	ContactID int64  `json:"contact_id"`
}
