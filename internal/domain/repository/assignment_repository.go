package repository

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// AssignmentRepository define el puerto de persistencia para las asignaciones
// empresa-usuario. "Vigente" significa end_date NULL o >= hoy.
type AssignmentRepository interface {
	// Assign crea una asignación vigente. Devuelve ErrDuplicateAssign si ya
	// existe una vigente para el mismo par (empresa, usuario).
	Assign(companyID, userID int64, isPrimary bool, startDate time.Time) (int64, error)
	// Unassign cierra con efecto inmediato todas las asignaciones vigentes
	// del par.
	Unassign(companyID, userID int64) error
	// SetPrimary degrada a secundario a todos los asignados de la empresa y
	// promueve al usuario dado, en una sola transacción.
	SetPrimary(companyID, userID int64) error
	IsUserAssigned(companyID, userID int64) (bool, error)
	ListByCompany(companyID int64) ([]*entity.Assignment, error)
	ListByUser(userID int64) ([]*entity.Assignment, error)
}
