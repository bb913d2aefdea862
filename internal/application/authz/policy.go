package authz

import (
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Identity es la identidad verificada de la petición, extraída del token de
// sesión. Role y Name provienen del payload del token: si cambian en el
// servidor, el token emitido conserva los valores antiguos hasta expirar.
type Identity struct {
	UserID  int64
	LoginID string
	Name    string
	Role    string
}

// IsAdmin informa si la identidad tiene rol de administrador.
func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// Scope delimita qué empresas puede ver un listado: todas (admin) o solo las
// asignadas al usuario.
type Scope struct {
	All    bool
	UserID int64
}

// Guard es una comprobación de autorización pura sobre una identidad:
// nil = permitir, error de dominio = denegar con motivo.
type Guard func(id Identity) error

// All compone guards de izquierda a derecha y corta en la primera denegación.
func All(guards ...Guard) Guard {
	return func(id Identity) error {
		for _, g := range guards {
			if err := g(id); err != nil {
				return err
			}
		}
		return nil
	}
}

// AdminOnly deniega a cualquier identidad sin rol admin.
func AdminOnly() Guard {
	return func(id Identity) error {
		if !id.IsAdmin() {
			return domain.ErrForbidden
		}
		return nil
	}
}

// Policy centraliza las decisiones de autorización por rol y por pertenencia,
// en lugar de repetirlas en cada handler. Dos ejes: el rol admin pasa todo
// control; un usuario normal queda limitado a las empresas que tiene
// asignadas vigentes y a las actividades de su autoría.
type Policy struct {
	assignments repository.AssignmentRepository
	activities  repository.ActivityRepository
}

// NewPolicy construye la política con los puertos de persistencia que consulta.
func NewPolicy(assignments repository.AssignmentRepository, activities repository.ActivityRepository) *Policy {
	return &Policy{assignments: assignments, activities: activities}
}

// CanAccessCompany permite a admin incondicionalmente; a un usuario normal
// solo si existe una asignación vigente con la empresa.
func (p *Policy) CanAccessCompany(id Identity, companyID int64) error {
	if id.IsAdmin() {
		return nil
	}
	assigned, err := p.assignments.IsUserAssigned(companyID, id.UserID)
	if err != nil {
		return err
	}
	if !assigned {
		return domain.ErrForbidden
	}
	return nil
}

// CanEditActivity permite a admin; a un usuario normal solo si es el autor de
// la actividad. Actividad inexistente o borrada -> ErrNotFound.
//
// La lectura de detalle de actividad NO pasa por aquí: cualquier usuario
// autenticado puede consultar una actividad por ID (asimetría heredada del
// diseño original, mantenida a propósito).
func (p *Policy) CanEditActivity(id Identity, activityID int64) error {
	if id.IsAdmin() {
		return nil
	}
	activity, err := p.activities.GetByID(activityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return domain.ErrNotFound
	}
	if activity.UserID != id.UserID {
		return domain.ErrForbidden
	}
	return nil
}

// CompanyScope devuelve el alcance de listado: admin ve todo, un usuario
// normal solo sus empresas asignadas.
func (p *Policy) CompanyScope(id Identity) Scope {
	if id.IsAdmin() {
		return Scope{All: true}
	}
	return Scope{UserID: id.UserID}
}

// CompanyGuard adapta CanAccessCompany a la forma componible Guard.
func (p *Policy) CompanyGuard(companyID int64) Guard {
	return func(id Identity) error {
		return p.CanAccessCompany(id, companyID)
	}
}

// ActivityOwnerGuard adapta CanEditActivity a la forma componible Guard.
func (p *Policy) ActivityOwnerGuard(activityID int64) Guard {
	return func(id Identity) error {
		return p.CanEditActivity(id, activityID)
	}
}
