package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// QuotationHandler maneja las peticiones HTTP para cotizaciones, incluida la
// subida multipart y la descarga del archivo.
type QuotationHandler struct {
	uc *usecase.QuotationUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *usecase.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// ListByCompany godoc
// @Summary      Listar cotizaciones de una empresa
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.QuotationListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/quotations/company/{company_id} [get]
func (h *QuotationHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	out, err := h.uc.ListByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cotización por ID
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        quotation_id  path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotation_id} [get]
func (h *QuotationHandler) Get(c *fiber.Ctx) error {
	quotationID, err := paramID(c, "quotation_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "quotation_id inválido"})
	}
	out, err := h.uc.Get(quotationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Subir cotización (multipart, máx 10 MB)
// @Tags         quotations
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        company_id  path      int     true   "ID de la empresa"
// @Param        file        formData  file    true   "Archivo (pdf, xls/xlsx, doc/docx, jpeg, png)"
// @Param        title       formData  string  true   "Título"
// @Param        amount      formData  string  false  "Monto"
// @Success      201  {object}  dto.CreatedQuotationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/quotations/company/{company_id} [post]
func (h *QuotationHandler) Upload(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	var in dto.UploadQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo file es requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	quotationID, err := h.uc.Upload(companyID, GetIdentity(c).UserID, in, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		switch err {
		case domain.ErrFileTypeNotAllowed:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TYPE_NOT_ALLOWED", Message: "tipo de archivo no permitido"})
		case domain.ErrFileTooLarge:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el máximo de 10MB"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount o quotation_date inválidos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedQuotationResponse{Message: "cotización subida", QuotationID: quotationID})
}

// Download godoc
// @Summary      Descargar el archivo de una cotización
// @Tags         quotations
// @Security     Bearer
// @Produce      octet-stream
// @Param        quotation_id  path  int  true  "ID de la cotización"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotation_id}/download [get]
func (h *QuotationHandler) Download(c *fiber.Ctx) error {
	quotationID, err := paramID(c, "quotation_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "quotation_id inválido"})
	}
	path, fileName, err := h.uc.Download(quotationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización o archivo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// El archivo se sirve con su nombre original, no el nombre único en disco.
	return c.Download(path, fileName)
}

// Update godoc
// @Summary      Actualizar metadatos de una cotización
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        quotation_id  path  int  true  "ID de la cotización"
// @Param        body  body  dto.UpdateQuotationRequest  true  "Metadatos"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotation_id} [put]
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	quotationID, err := paramID(c, "quotation_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "quotation_id inválido"})
	}
	var in dto.UpdateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	if err := h.uc.Update(quotationID, in); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quotation_date debe ser YYYY-MM-DD"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "cotización actualizada"})
}

// Delete godoc
// @Summary      Borrar cotización (lógico, el archivo en disco se conserva)
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        quotation_id  path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotation_id} [delete]
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	quotationID, err := paramID(c, "quotation_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "quotation_id inválido"})
	}
	if err := h.uc.Delete(quotationID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "cotización eliminada"})
}
