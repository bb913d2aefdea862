package entity

import "time"

// Activity representa una interacción registrada con una empresa (visita,
// llamada, correo, etc.), autorada por un usuario. Puede llevar una fecha de
// próxima acción que alimenta las vistas de seguimiento (próximas y vencidas).
type Activity struct {
	ID                int64
	CompanyID         int64
	UserID            int64
	ActivityDate      time.Time
	ActivityType      string
	Content           string
	NextActionDate    *time.Time // nil = sin seguimiento pendiente
	NextActionContent string
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Campos denormalizados para presentación (join con users / companies).
	UserName    string
	CompanyName string
}
