package usecase

import (
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// MaxQuotationFileSize tamaño máximo aceptado para el archivo de una cotización.
const MaxQuotationFileSize = 10 * 1024 * 1024 // 10 MB

// allowedQuotationTypes MIME types aceptados para archivos de cotización.
var allowedQuotationTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"image/jpeg": true,
	"image/png":  true,
}

// FileStore es el contrato mínimo de almacenamiento de archivos que necesita
// el caso de uso (lo implementa storage.LocalStore).
type FileStore interface {
	Save(storedName string, r io.Reader) (path string, written int64, err error)
	Exists(path string) bool
}

// QuotationUseCase aplica reglas de negocio para cotizaciones: subida con
// validación de tipo y tamaño, descarga y CRUD de metadatos.
type QuotationUseCase struct {
	quotations repository.QuotationRepository
	store      FileStore
	maxSize    int64
}

// NewQuotationUseCase construye el caso de uso. maxSize <= 0 usa el tope por defecto.
func NewQuotationUseCase(quotations repository.QuotationRepository, store FileStore, maxSize int64) *QuotationUseCase {
	if maxSize <= 0 {
		maxSize = MaxQuotationFileSize
	}
	return &QuotationUseCase{quotations: quotations, store: store, maxSize: maxSize}
}

// ListByCompany devuelve las cotizaciones no borradas de una empresa.
func (uc *QuotationUseCase) ListByCompany(companyID int64) (*dto.QuotationListResponse, error) {
	quotations, err := uc.quotations.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.QuotationListResponse{Quotations: make([]dto.QuotationResponse, 0, len(quotations))}
	for _, q := range quotations {
		out.Quotations = append(out.Quotations, *toQuotationResponse(q))
	}
	return out, nil
}

// Get devuelve una cotización por ID. nil si no existe o está borrada.
func (uc *QuotationUseCase) Get(quotationID int64) (*dto.QuotationResponse, error) {
	quotation, err := uc.quotations.GetByID(quotationID)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation), nil
}

// Upload valida tipo y tamaño, escribe el archivo en disco bajo un nombre
// único y después persiste los metadatos. El orden importa: el archivo
// primero, la fila después.
func (uc *QuotationUseCase) Upload(companyID, userID int64, in dto.UploadQuotationRequest, fileName, contentType string, fileSize int64, content io.Reader) (int64, error) {
	if !allowedQuotationTypes[contentType] {
		return 0, domain.ErrFileTypeNotAllowed
	}
	if fileSize > uc.maxSize {
		return 0, domain.ErrFileTooLarge
	}
	quotationDate, err := dto.ParseDate(in.QuotationDate)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	var amount decimal.NullDecimal
	if in.Amount != "" {
		d, err := decimal.NewFromString(in.Amount)
		if err != nil {
			return 0, domain.ErrInvalidInput
		}
		amount = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	storedName := uuid.New().String() + filepath.Ext(fileName)
	path, written, err := uc.store.Save(storedName, content)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	quotation := &entity.Quotation{
		CompanyID:     companyID,
		UserID:        userID,
		Title:         in.Title,
		FileName:      fileName,
		StoredName:    storedName,
		FilePath:      path,
		FileSize:      written,
		FileType:      contentType,
		Amount:        amount,
		QuotationDate: quotationDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return uc.quotations.Create(quotation)
}

// Download devuelve el path en disco y el nombre original para servir el
// archivo. ErrNotFound si la fila no existe o el archivo ya no está en disco.
func (uc *QuotationUseCase) Download(quotationID int64) (path, fileName string, err error) {
	quotation, err := uc.quotations.GetByID(quotationID)
	if err != nil {
		return "", "", err
	}
	if quotation == nil {
		return "", "", domain.ErrNotFound
	}
	if !uc.store.Exists(quotation.FilePath) {
		return "", "", domain.ErrNotFound
	}
	return quotation.FilePath, quotation.FileName, nil
}

// Update modifica los metadatos editables de una cotización.
func (uc *QuotationUseCase) Update(quotationID int64, in dto.UpdateQuotationRequest) error {
	existing, err := uc.quotations.GetByID(quotationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	quotationDate, err := dto.ParseDate(in.QuotationDate)
	if err != nil {
		return domain.ErrInvalidInput
	}
	existing.Title = in.Title
	existing.Amount = in.Amount
	existing.QuotationDate = quotationDate
	existing.Notes = in.Notes
	existing.UpdatedAt = time.Now()
	return uc.quotations.Update(existing)
}

// Delete borra lógicamente una cotización. El archivo en disco se conserva.
func (uc *QuotationUseCase) Delete(quotationID int64) error {
	existing, err := uc.quotations.GetByID(quotationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.quotations.SoftDelete(quotationID)
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	if q == nil {
		return nil
	}
	return &dto.QuotationResponse{
		QuotationID:   q.ID,
		CompanyID:     q.CompanyID,
		UserID:        q.UserID,
		Title:         q.Title,
		FileName:      q.FileName,
		FileSize:      q.FileSize,
		FileType:      q.FileType,
		Amount:        q.Amount,
		QuotationDate: dto.FormatDate(q.QuotationDate),
		Notes:         q.Notes,
		UserName:      q.UserName,
		CompanyName:   q.CompanyName,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
