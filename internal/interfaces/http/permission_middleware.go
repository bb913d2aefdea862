package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// paramID parsea un parámetro de ruta numérico (company_id, activity_id...).
func paramID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// runGuard evalúa un guard de autorización y traduce la denegación a HTTP.
// Los guards componen de izquierda a derecha y cortan en la primera denegación.
func runGuard(c *fiber.Ctx, guard authz.Guard) error {
	switch err := guard(GetIdentity(c)); err {
	case nil:
		return c.Next()
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso sobre este recurso"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo evaluar el permiso"})
	}
}

// RequireCompanyAccess autoriza el acceso a la empresa de la ruta: admin
// siempre; usuario normal solo con asignación vigente. Debe usarse DESPUÉS de
// AuthMiddleware.
func RequireCompanyAccess(policy *authz.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID, err := paramID(c, "company_id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id inválido"})
		}
		return runGuard(c, policy.CompanyGuard(companyID))
	}
}

// RequireActivityOwner autoriza la edición/borrado de la actividad de la
// ruta: admin siempre; usuario normal solo si es el autor. La lectura de
// detalle no pasa por aquí a propósito.
func RequireActivityOwner(policy *authz.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activityID, err := paramID(c, "activity_id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "activity_id inválido"})
		}
		return runGuard(c, policy.ActivityOwnerGuard(activityID))
	}
}
