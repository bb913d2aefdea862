package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UploadQuotationRequest metadatos que acompañan al archivo multipart.
type UploadQuotationRequest struct {
	Title         string `form:"title" validate:"required,min=1,max=200"`
	Amount        string `form:"amount" validate:"omitempty"`
	QuotationDate string `form:"quotation_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string `form:"notes"`
}

// UpdateQuotationRequest metadatos editables de una cotización ya subida.
type UpdateQuotationRequest struct {
	Title         string              `json:"title" validate:"required,min=1,max=200"`
	Amount        decimal.NullDecimal `json:"amount"`
	QuotationDate string              `json:"quotation_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string              `json:"notes"`
}

// QuotationResponse salida de una cotización con los nombres denormalizados.
type QuotationResponse struct {
	QuotationID   int64               `json:"quotation_id"`
	CompanyID     int64               `json:"company_id"`
	UserID        int64               `json:"user_id"`
	Title         string              `json:"title"`
	FileName      string              `json:"file_name"`
	FileSize      int64               `json:"file_size"`
	FileType      string              `json:"file_type"`
	Amount        decimal.NullDecimal `json:"amount"`
	QuotationDate string              `json:"quotation_date,omitempty"`
	Notes         string              `json:"notes"`
	UserName      string              `json:"user_name,omitempty"`
	CompanyName   string              `json:"company_name,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// QuotationListResponse listado de cotizaciones.
type QuotationListResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
}

// CreatedQuotationResponse confirmación de subida con el ID generado.
type CreatedQuotationResponse struct {
	Message     string `json:"message"`
	QuotationID int64  `json:"quotation_id"`
}
