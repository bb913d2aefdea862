package dto

import "time"

// SaveCompanyRequest entrada para crear o actualizar una empresa.
type SaveCompanyRequest struct {
	CompanyName     string `json:"company_name" validate:"required,min=1,max=200"`
	CompanyNameKana string `json:"company_name_kana" validate:"omitempty,max=200"`
	PostalCode      string `json:"postal_code" validate:"omitempty,max=10"`
	Address         string `json:"address"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
	Fax             string `json:"fax" validate:"omitempty,max=20"`
	Industry        string `json:"industry" validate:"omitempty,max=100"`
	EmployeeCount   *int   `json:"employee_count" validate:"omitempty,min=0"`
	EstablishedDate string `json:"established_date" validate:"omitempty,datetime=2006-01-02"`
	WebsiteURL      string `json:"website_url" validate:"omitempty,url"`
	Notes           string `json:"notes"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	CompanyID       int64     `json:"company_id"`
	CompanyName     string    `json:"company_name"`
	CompanyNameKana string    `json:"company_name_kana"`
	PostalCode      string    `json:"postal_code"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	Fax             string    `json:"fax"`
	Industry        string    `json:"industry"`
	EmployeeCount   *int      `json:"employee_count"`
	EstablishedDate string    `json:"established_date"`
	WebsiteURL      string    `json:"website_url"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CompanyDetailResponse empresa más sus asignados vigentes.
type CompanyDetailResponse struct {
	CompanyResponse
	AssignedUsers []AssignmentResponse `json:"assigned_users"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// CreatedCompanyResponse confirmación de alta con el ID generado.
type CreatedCompanyResponse struct {
	Message   string `json:"message"`
	CompanyID int64  `json:"company_id"`
}

// AssignUserRequest entrada para asignar un responsable a una empresa.
type AssignUserRequest struct {
	UserID    int64 `json:"user_id" validate:"required"`
	IsPrimary bool  `json:"is_primary"`
}

// AssignmentResponse salida de una asignación empresa-usuario.
type AssignmentResponse struct {
	AssignmentID int64  `json:"assignment_id"`
	CompanyID    int64  `json:"company_id"`
	UserID       int64  `json:"user_id"`
	IsPrimary    bool   `json:"is_primary"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	UserName     string `json:"user_name,omitempty"`
	Email        string `json:"email,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
}
