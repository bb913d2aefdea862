package entity

import "time"

// Company representa una empresa cliente del CRM.
// El borrado es lógico: IsDeleted = true y la fila deja de aparecer en
// cualquier listado o consulta por ID.
type Company struct {
	ID              int64
	Name            string
	NameKana        string // lectura fonética del nombre
	PostalCode      string
	Address         string
	Phone           string
	Fax             string
	Industry        string
	EmployeeCount   *int
	EstablishedDate *time.Time
	WebsiteURL      string
	Notes           string
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
