package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// ActivityHandler maneja las peticiones HTTP para actividades de venta y sus
// vistas de seguimiento.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// NextActions godoc
// @Summary      Próximas acciones dentro de la ventana de días
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (defecto 30)"
// @Success      200  {object}  dto.NextActionListResponse
// @Router       /api/activities/next-actions [get]
func (h *ActivityHandler) NextActions(c *fiber.Ctx) error {
	out, err := h.uc.NextActions(GetIdentity(c), c.QueryInt("days", usecase.DefaultNextActionDays))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Overdue godoc
// @Summary      Próximas acciones vencidas
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverdueListResponse
// @Router       /api/activities/overdue [get]
func (h *ActivityHandler) Overdue(c *fiber.Ctx) error {
	out, err := h.uc.Overdue(GetIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar actividades de una empresa
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.ActivityListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/activities/company/{company_id} [get]
func (h *ActivityHandler) ListByCompany(c *fiber.Ctx) error {
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
// @Summary      Obtener actividad por ID
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        activity_id  path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{activity_id} [get]
func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	activityID, err := paramID(c, "activity_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "activity_id inválido"})
	}
	out, err := h.uc.Get(activityID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar actividad en una empresa
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Param        body  body  dto.SaveActivityRequest  true  "Datos de la actividad"
// @Success      201   {object}  dto.CreatedActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/activities/company/{company_id} [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	var in dto.SaveActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "content es requerido"})
	}
	activityID, err := h.uc.Create(companyID, GetIdentity(c).UserID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "activity_date es requerida en formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedActivityResponse{Message: "actividad registrada", ActivityID: activityID})
}

// Update godoc
// @Summary      Actualizar actividad (autor o admin)
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        activity_id  path  int  true  "ID de la actividad"
// @Param        body  body  dto.SaveActivityRequest  true  "Datos de la actividad"
// @Success      200   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/activities/{activity_id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	activityID, err := paramID(c, "activity_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "activity_id inválido"})
	}
	var in dto.SaveActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(activityID, in); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "activity_date es requerida en formato YYYY-MM-DD"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "actividad actualizada"})
}

// Delete godoc
// @Summary      Borrar actividad (lógico, autor o admin)
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        activity_id  path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{activity_id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	activityID, err := paramID(c, "activity_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "activity_id inválido"})
	}
	if err := h.uc.Delete(activityID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "actividad eliminada"})
}
