package entity

import "time"

// Assignment relaciona un usuario con una empresa de la que es responsable.
// Está acotada en el tiempo: la relación está vigente mientras EndDate sea
// nil o una fecha futura (>= hoy). Como máximo debe existir una asignación
// vigente por par (empresa, usuario).
type Assignment struct {
	ID        int64
	CompanyID int64
	UserID    int64
	IsPrimary bool // responsable principal de la empresa
	StartDate time.Time
	EndDate   *time.Time // nil = vigente sin fecha de fin
	CreatedAt time.Time

	// Campos denormalizados para presentación (join con users / companies).
	UserName    string
	UserEmail   string
	CompanyName string
}

// ActiveAt informa si la asignación está vigente en la fecha dada.
func (a *Assignment) ActiveAt(day time.Time) bool {
	if a.EndDate == nil {
		return true
	}
	y1, m1, d1 := a.EndDate.Date()
	y2, m2, d2 := day.Date()
	end := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return !end.Before(today)
}
