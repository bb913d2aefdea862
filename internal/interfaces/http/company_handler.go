package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para empresas y asignaciones.
type CompanyHandler struct {
	uc     *usecase.CompanyUseCase
	policy *authz.Policy
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, policy *authz.Policy) *CompanyHandler {
	return &CompanyHandler{uc: uc, policy: policy}
}

// List godoc
// @Summary      Listar empresas (alcance por identidad)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre o industria"
// @Param        page    query  int     false  "Página (desde 1)"
// @Param        limit   query  int     false  "Tamaño de página (máx 100)"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	out, err := h.uc.List(
		identity,
		h.policy.CompanyScope(identity),
		c.Query("search"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 50),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de empresa con asignados vigentes
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	out, err := h.uc.Get(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CreatedCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name es requerido"})
	}
	companyID, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "established_date debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedCompanyResponse{Message: "empresa creada", CompanyID: companyID})
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Param        body  body  dto.SaveCompanyRequest  true  "Datos de la empresa"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	var in dto.SaveCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name es requerido"})
	}
	if err := h.uc.Update(companyID, in); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "established_date debe ser YYYY-MM-DD"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "empresa actualizada"})
}

// Delete godoc
// @Summary      Borrar empresa (lógico)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	if err := h.uc.Delete(companyID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "empresa eliminada"})
}

// AssignUser godoc
// @Summary      Asignar un responsable a la empresa
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Param        body  body  dto.AssignUserRequest  true  "Usuario a asignar"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/users [post]
func (h *CompanyHandler) AssignUser(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	var in dto.AssignUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	if err := h.uc.AssignUser(companyID, in.UserID, in.IsPrimary); err != nil {
		if err == domain.ErrDuplicateAssign {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_ASSIGN", Message: "el usuario ya tiene una asignación vigente con esta empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "usuario asignado"})
}

// UnassignUser godoc
// @Summary      Cerrar la asignación vigente de un usuario con la empresa
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Param        user_id     path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/companies/{company_id}/users/{user_id} [delete]
func (h *CompanyHandler) UnassignUser(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "user_id inválido"})
	}
	if err := h.uc.UnassignUser(companyID, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "asignación cerrada"})
}

// SetPrimary godoc
// @Summary      Convertir al usuario en responsable principal único
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Param        user_id     path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/companies/{company_id}/users/{user_id}/primary [put]
func (h *CompanyHandler) SetPrimary(c *fiber.Ctx) error {
	companyID, err := paramID(c, "company_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
	}
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "user_id inválido"})
	}
	if err := h.uc.SetPrimary(companyID, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "responsable principal actualizado"})
}
