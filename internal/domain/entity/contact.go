package entity

import "time"

// Contact representa una persona de contacto dentro de una empresa cliente.
type Contact struct {
	ID          int64
	CompanyID   int64
	Name        string
	NameKana    string
	Department  string
	Position    string
	Email       string
	Phone       string
	MobilePhone string
	Notes       string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
