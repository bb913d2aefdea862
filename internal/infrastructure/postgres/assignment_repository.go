package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
// Una asignación está vigente cuando end_date es NULL o >= CURRENT_DATE.
type AssignmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository construye el adaptador de persistencia para asignaciones.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// Assign crea una asignación vigente con inicio en startDate. Comprueba antes
// que no exista otra vigente para el par: el invariante es como máximo una
// asignación vigente por (empresa, usuario).
func (r *AssignmentRepo) Assign(companyID, userID int64, isPrimary bool, startDate time.Time) (int64, error) {
	ctx := context.Background()
	assigned, err := r.IsUserAssigned(companyID, userID)
	if err != nil {
		return 0, err
	}
	if assigned {
		return 0, domain.ErrDuplicateAssign
	}
	query := `
		INSERT INTO company_users (company_id, user_id, is_primary, start_date, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING assignment_id`
	var id int64
	if err := r.pool.QueryRow(ctx, query, companyID, userID, isPrimary, startDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert assignment: %w", err)
	}
	return id, nil
}

// Unassign cierra todas las asignaciones vigentes del par. El cierre es con
// efecto inmediato: como vigente significa end_date >= CURRENT_DATE, se
// estampa ayer como fecha de fin.
func (r *AssignmentRepo) Unassign(companyID, userID int64) error {
	query := `
		UPDATE company_users
		SET end_date = CURRENT_DATE - 1
		WHERE company_id = $1 AND user_id = $2
		  AND (end_date IS NULL OR end_date >= CURRENT_DATE)`
	_, err := r.pool.Exec(context.Background(), query, companyID, userID)
	if err != nil {
		return fmt.Errorf("unassign: %w", err)
	}
	return nil
}

// SetPrimary degrada a todos los asignados de la empresa y promueve al
// usuario dado, dentro de una transacción para que el estado intermedio
// (empresa sin principal) no sea observable.
func (r *AssignmentRepo) SetPrimary(companyID, userID int64) error {
	ctx := context.Background()
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE company_users SET is_primary = false WHERE company_id = $1`,
			companyID,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`UPDATE company_users SET is_primary = true WHERE company_id = $1 AND user_id = $2`,
			companyID, userID,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("set primary: %w", err)
	}
	return nil
}

// IsUserAssigned informa si el usuario tiene una asignación vigente con la empresa.
func (r *AssignmentRepo) IsUserAssigned(companyID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM company_users
			WHERE company_id = $1 AND user_id = $2
			  AND (end_date IS NULL OR end_date >= CURRENT_DATE)
		)`
	var assigned bool
	if err := r.pool.QueryRow(context.Background(), query, companyID, userID).Scan(&assigned); err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return assigned, nil
}

// ListByCompany devuelve los asignados vigentes de la empresa con nombre y
// email del usuario resueltos, principal primero.
func (r *AssignmentRepo) ListByCompany(companyID int64) ([]*entity.Assignment, error) {
	query := `
		SELECT cu.assignment_id, cu.company_id, cu.user_id, cu.is_primary,
		       cu.start_date, cu.end_date, cu.created_at, u.name, u.email
		FROM company_users cu
		INNER JOIN users u ON cu.user_id = u.user_id
		WHERE cu.company_id = $1
		  AND (cu.end_date IS NULL OR cu.end_date >= CURRENT_DATE)
		ORDER BY cu.is_primary DESC, cu.created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by company: %w", err)
	}
	defer rows.Close()
	var list []*entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.UserID, &a.IsPrimary,
			&a.StartDate, &a.EndDate, &a.CreatedAt, &a.UserName, &a.UserEmail); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListByUser devuelve las asignaciones vigentes del usuario con el nombre de
// la empresa resuelto, excluyendo empresas borradas.
func (r *AssignmentRepo) ListByUser(userID int64) ([]*entity.Assignment, error) {
	query := `
		SELECT cu.assignment_id, cu.company_id, cu.user_id, cu.is_primary,
		       cu.start_date, cu.end_date, cu.created_at, c.company_name
		FROM company_users cu
		INNER JOIN companies c ON cu.company_id = c.company_id
		WHERE cu.user_id = $1
		  AND c.is_deleted = false
		  AND (cu.end_date IS NULL OR cu.end_date >= CURRENT_DATE)
		ORDER BY cu.is_primary DESC, cu.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.UserID, &a.IsPrimary,
			&a.StartDate, &a.EndDate, &a.CreatedAt, &a.CompanyName); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
