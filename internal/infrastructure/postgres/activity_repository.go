package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// selectActivity columnas de actividad más los nombres denormalizados de
// autor y empresa (LEFT JOIN: una actividad no pierde visibilidad porque su
// autor haya sido desactivado).
const selectActivity = `
	SELECT a.activity_id, a.company_id, a.user_id, a.activity_date, a.activity_type,
	       a.content, a.next_action_date, a.next_action_content, a.created_at, a.updated_at,
	       COALESCE(u.name, ''), COALESCE(c.company_name, '')
	FROM activities a
	LEFT JOIN users u ON a.user_id = u.user_id
	LEFT JOIN companies c ON a.company_id = c.company_id`

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
type ActivityRepo struct {
	pool *pgxpool.Pool
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Create persiste una nueva actividad y devuelve el ID generado.
func (r *ActivityRepo) Create(activity *entity.Activity) (int64, error) {
	query := `
		INSERT INTO activities (company_id, user_id, activity_date, activity_type,
			content, next_action_date, next_action_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING activity_id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		activity.CompanyID, activity.UserID, activity.ActivityDate, activity.ActivityType,
		activity.Content, activity.NextActionDate, activity.NextActionContent,
		activity.CreatedAt, activity.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	return id, nil
}

// GetByID obtiene una actividad no borrada por ID con nombres resueltos.
func (r *ActivityRepo) GetByID(id int64) (*entity.Activity, error) {
	query := selectActivity + ` WHERE a.activity_id = $1 AND a.is_deleted = false`
	rows, err := r.pool.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	defer rows.Close()
	list, err := scanActivities(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListByCompany devuelve las actividades no borradas de una empresa,
// recientes primero.
func (r *ActivityRepo) ListByCompany(companyID int64) ([]*entity.Activity, error) {
	query := selectActivity + `
		WHERE a.company_id = $1 AND a.is_deleted = false
		ORDER BY a.activity_date DESC, a.created_at DESC`
	return r.queryActivities(query, companyID)
}

// ListAll devuelve todas las actividades no borradas, paginadas (vista admin).
func (r *ActivityRepo) ListAll(limit, offset int) ([]*entity.Activity, error) {
	query := selectActivity + `
		WHERE a.is_deleted = false
		ORDER BY a.activity_date DESC, a.created_at DESC
		LIMIT $1 OFFSET $2`
	return r.queryActivities(query, limit, offset)
}

// NextActions devuelve actividades con próxima acción no nula dentro de la
// ventana (next_action_date <= hoy + days), ascendente por fecha.
func (r *ActivityRepo) NextActions(userID *int64, days int) ([]*entity.Activity, error) {
	query := selectActivity + `
		WHERE a.is_deleted = false
		  AND a.next_action_date IS NOT NULL
		  AND a.next_action_date <= CURRENT_DATE + $1`
	args := []any{days}
	if userID != nil {
		query += ` AND a.user_id = $2`
		args = append(args, *userID)
	}
	query += ` ORDER BY a.next_action_date ASC`
	return r.queryActivities(query, args...)
}

// Overdue devuelve actividades con próxima acción vencida (estrictamente
// anterior a hoy; hoy mismo aún no cuenta como vencida), ascendente.
func (r *ActivityRepo) Overdue(userID *int64) ([]*entity.Activity, error) {
	query := selectActivity + `
		WHERE a.is_deleted = false
		  AND a.next_action_date IS NOT NULL
		  AND a.next_action_date < CURRENT_DATE`
	var args []any
	if userID != nil {
		query += ` AND a.user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY a.next_action_date ASC`
	return r.queryActivities(query, args...)
}

// Update actualiza una actividad no borrada; autor y empresa no cambian.
func (r *ActivityRepo) Update(activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET activity_date = $2, activity_type = $3, content = $4,
		    next_action_date = $5, next_action_content = $6, updated_at = $7
		WHERE activity_id = $1 AND is_deleted = false`
	_, err := r.pool.Exec(context.Background(), query,
		activity.ID, activity.ActivityDate, activity.ActivityType, activity.Content,
		activity.NextActionDate, activity.NextActionContent, activity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

// SoftDelete marca la actividad como borrada; la fila persiste.
func (r *ActivityRepo) SoftDelete(id int64) error {
	query := `UPDATE activities SET is_deleted = true, updated_at = now() WHERE activity_id = $1`
	_, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func (r *ActivityRepo) queryActivities(query string, args ...any) ([]*entity.Activity, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]*entity.Activity, error) {
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.UserID, &a.ActivityDate, &a.ActivityType,
			&a.Content, &a.NextActionDate, &a.NextActionContent, &a.CreatedAt, &a.UpdatedAt,
			&a.UserName, &a.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
