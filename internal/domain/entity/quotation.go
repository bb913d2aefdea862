package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation representa una cotización adjunta a una empresa: el archivo vive
// en disco (FilePath) y la fila guarda sus metadatos. El monto usa
// shopspring/decimal para no perder precisión en NUMERIC.
type Quotation struct {
	ID            int64
	CompanyID     int64
	UserID        int64
	Title         string
	FileName      string // nombre original subido por el usuario
	StoredName    string // nombre único generado en disco
	FilePath      string
	FileSize      int64
	FileType      string // MIME type validado en la subida
	Amount        decimal.NullDecimal
	QuotationDate *time.Time
	Notes         string
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Campos denormalizados para presentación (join con users / companies).
	UserName    string
	CompanyName string
}
