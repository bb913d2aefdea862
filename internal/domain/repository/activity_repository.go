package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para Activity (DIP).
// Las lecturas devuelven los campos denormalizados (nombre de empresa y de
// autor) resueltos vía join; es una comodidad de lectura, no una relación.
type ActivityRepository interface {
	Create(activity *entity.Activity) (int64, error)
	GetByID(id int64) (*entity.Activity, error)
	ListByCompany(companyID int64) ([]*entity.Activity, error)
	ListAll(limit, offset int) ([]*entity.Activity, error)
	// NextActions devuelve actividades con próxima acción no nula y con fecha
	// <= hoy + days, ascendente. userID nil = sin filtrar por autor (admin).
	NextActions(userID *int64, days int) ([]*entity.Activity, error)
	// Overdue devuelve actividades con próxima acción no nula y vencida
	// (fecha < hoy), ascendente. userID nil = sin filtrar por autor.
	Overdue(userID *int64) ([]*entity.Activity, error)
	Update(activity *entity.Activity) error
	SoftDelete(id int64) error
}
