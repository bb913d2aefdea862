package dto

import "time"

// SaveActivityRequest entrada para crear o actualizar una actividad.
type SaveActivityRequest struct {
	ActivityDate      string `json:"activity_date" validate:"required,datetime=2006-01-02"`
	ActivityType      string `json:"activity_type" validate:"omitempty,max=50"`
	Content           string `json:"content" validate:"required"`
	NextActionDate    string `json:"next_action_date" validate:"omitempty,datetime=2006-01-02"`
	NextActionContent string `json:"next_action_content"`
}

// ActivityResponse salida de una actividad con los nombres denormalizados.
type ActivityResponse struct {
	ActivityID        int64     `json:"activity_id"`
	CompanyID         int64     `json:"company_id"`
	UserID            int64     `json:"user_id"`
	ActivityDate      string    `json:"activity_date"`
	ActivityType      string    `json:"activity_type"`
	Content           string    `json:"content"`
	NextActionDate    string    `json:"next_action_date,omitempty"`
	NextActionContent string    `json:"next_action_content,omitempty"`
	UserName          string    `json:"user_name,omitempty"`
	CompanyName       string    `json:"company_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ActivityListResponse listado de actividades.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// NextActionListResponse actividades con próxima acción dentro de la ventana.
type NextActionListResponse struct {
	NextActions []ActivityResponse `json:"next_actions"`
}

// OverdueListResponse actividades con próxima acción vencida.
type OverdueListResponse struct {
	OverdueActions []ActivityResponse `json:"overdue_actions"`
}

// CreatedActivityResponse confirmación de alta con el ID generado.
type CreatedActivityResponse struct {
	Message    string `json:"message"`
	ActivityID int64  `json:"activity_id"`
}
