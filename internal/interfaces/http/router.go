package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	ContactUC   *usecase.ContactUseCase
	ActivityUC  *usecase.ActivityUseCase
	QuotationUC *usecase.QuotationUseCase
	UserUC      *usecase.UserUseCase
	Policy      *authz.Policy
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; el resto requiere Bearer Token.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.AuthUC), authHandler.Me)
	authGroup.Post("/change-password", AuthMiddleware(deps.AuthUC), authHandler.ChangePassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Companies: el listado y el alta aplican alcance por identidad en el use
	// case; el detalle y las mutaciones van detrás del guard de asignación.
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Policy)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:company_id", RequireCompanyAccess(deps.Policy), companyHandler.Get)
	companies.Put("/:company_id", RequireCompanyAccess(deps.Policy), companyHandler.Update)
	companies.Delete("/:company_id", RequireCompanyAccess(deps.Policy), companyHandler.Delete)
	companies.Post("/:company_id/users", RequireCompanyAccess(deps.Policy), companyHandler.AssignUser)
	companies.Delete("/:company_id/users/:user_id", RequireCompanyAccess(deps.Policy), companyHandler.UnassignUser)
	companies.Put("/:company_id/users/:user_id/primary", RequireCompanyAccess(deps.Policy), companyHandler.SetPrimary)

	// Contacts: listado/alta por empresa (gated); detalle/edición por ID
	// solo con autenticación.
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/company/:company_id", RequireCompanyAccess(deps.Policy), contactHandler.ListByCompany)
	contacts.Post("/company/:company_id", RequireCompanyAccess(deps.Policy), contactHandler.Create)
	contacts.Get("/:contact_id", contactHandler.Get)
	contacts.Put("/:contact_id", contactHandler.Update)
	contacts.Delete("/:contact_id", contactHandler.Delete)

	// Activities: las vistas de seguimiento van antes que ":activity_id" para
	// que "next-actions" y "overdue" no se interpreten como IDs. La lectura de
	// detalle no exige autoría; editar y borrar sí (o rol admin).
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/next-actions", activityHandler.NextActions)
	activities.Get("/overdue", activityHandler.Overdue)
	activities.Get("/company/:company_id", RequireCompanyAccess(deps.Policy), activityHandler.ListByCompany)
	activities.Post("/company/:company_id", RequireCompanyAccess(deps.Policy), activityHandler.Create)
	activities.Get("/:activity_id", activityHandler.Get)
	activities.Put("/:activity_id", RequireActivityOwner(deps.Policy), activityHandler.Update)
	activities.Delete("/:activity_id", RequireActivityOwner(deps.Policy), activityHandler.Delete)

	// Quotations: listado/subida por empresa (gated); el resto por ID.
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Get("/company/:company_id", RequireCompanyAccess(deps.Policy), quotationHandler.ListByCompany)
	quotations.Post("/company/:company_id", RequireCompanyAccess(deps.Policy), quotationHandler.Upload)
	quotations.Get("/:quotation_id", quotationHandler.Get)
	quotations.Get("/:quotation_id/download", quotationHandler.Download)
	quotations.Put("/:quotation_id", quotationHandler.Update)
	quotations.Delete("/:quotation_id", quotationHandler.Delete)

	// Users (solo admin)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:user_id", userHandler.Get)
	users.Put("/:user_id", userHandler.Update)
	users.Post("/:user_id/reset-password", userHandler.ResetPassword)
	users.Delete("/:user_id", userHandler.Deactivate)
}
