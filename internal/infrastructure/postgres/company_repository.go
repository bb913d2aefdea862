package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `company_id, company_name, company_name_kana, postal_code, address,
		phone, fax, industry, employee_count, established_date, website_url, notes,
		created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Toda consulta filtra is_deleted; el borrado lógico no es saltable desde fuera.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa y devuelve el ID generado.
func (r *CompanyRepo) Create(company *entity.Company) (int64, error) {
	query := `
		INSERT INTO companies (company_name, company_name_kana, postal_code, address,
			phone, fax, industry, employee_count, established_date, website_url, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING company_id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		company.Name, company.NameKana, company.PostalCode, company.Address,
		company.Phone, company.Fax, company.Industry, company.EmployeeCount,
		company.EstablishedDate, company.WebsiteURL, company.Notes,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert company: %w", err)
	}
	return id, nil
}

// GetByID obtiene una empresa no borrada por ID.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1 AND is_deleted = false`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.NameKana, &c.PostalCode, &c.Address,
		&c.Phone, &c.Fax, &c.Industry, &c.EmployeeCount, &c.EstablishedDate,
		&c.WebsiteURL, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List devuelve empresas no borradas con filtro de substring y paginación.
func (r *CompanyRepo) List(search string, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE is_deleted = false`
	args := []any{}
	if search != "" {
		query += ` AND (company_name LIKE $1 OR industry LIKE $1)`
		args = append(args, likePattern(search))
	}
	query += fmt.Sprintf(` ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryCompanies(query, args...)
}

// ListByUser devuelve las empresas con asignación vigente para el usuario.
func (r *CompanyRepo) ListByUser(userID int64, search string, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT DISTINCT c.company_id, c.company_name, c.company_name_kana, c.postal_code, c.address,
			c.phone, c.fax, c.industry, c.employee_count, c.established_date, c.website_url, c.notes,
			c.created_at, c.updated_at
		FROM companies c
		INNER JOIN company_users cu ON c.company_id = cu.company_id
		WHERE c.is_deleted = false
		  AND cu.user_id = $1
		  AND (cu.end_date IS NULL OR cu.end_date >= CURRENT_DATE)`
	args := []any{userID}
	if search != "" {
		query += ` AND (c.company_name LIKE $2 OR c.industry LIKE $2)`
		args = append(args, likePattern(search))
	}
	query += fmt.Sprintf(` ORDER BY c.updated_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryCompanies(query, args...)
}

// Count cuenta empresas no borradas con el mismo filtro que List.
func (r *CompanyRepo) Count(search string) (int, error) {
	query := `SELECT COUNT(*) FROM companies WHERE is_deleted = false`
	args := []any{}
	if search != "" {
		query += ` AND (company_name LIKE $1 OR industry LIKE $1)`
		args = append(args, likePattern(search))
	}
	var count int
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return count, nil
}

// CountByUser cuenta las empresas asignadas vigentes del usuario con el mismo
// filtro que ListByUser (total real para la paginación).
func (r *CompanyRepo) CountByUser(userID int64, search string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT c.company_id)
		FROM companies c
		INNER JOIN company_users cu ON c.company_id = cu.company_id
		WHERE c.is_deleted = false
		  AND cu.user_id = $1
		  AND (cu.end_date IS NULL OR cu.end_date >= CURRENT_DATE)`
	args := []any{userID}
	if search != "" {
		query += ` AND (c.company_name LIKE $2 OR c.industry LIKE $2)`
		args = append(args, likePattern(search))
	}
	var count int
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count companies by user: %w", err)
	}
	return count, nil
}

// Update actualiza una empresa no borrada.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET company_name = $2, company_name_kana = $3, postal_code = $4, address = $5,
		    phone = $6, fax = $7, industry = $8, employee_count = $9,
		    established_date = $10, website_url = $11, notes = $12, updated_at = $13
		WHERE company_id = $1 AND is_deleted = false`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.NameKana, company.PostalCode, company.Address,
		company.Phone, company.Fax, company.Industry, company.EmployeeCount,
		company.EstablishedDate, company.WebsiteURL, company.Notes, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// SoftDelete marca la empresa como borrada; la fila persiste.
func (r *CompanyRepo) SoftDelete(id int64) error {
	query := `UPDATE companies SET is_deleted = true, updated_at = now() WHERE company_id = $1`
	_, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) queryCompanies(query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	return scanCompanies(rows)
}

func scanCompanies(rows pgx.Rows) ([]*entity.Company, error) {
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.NameKana, &c.PostalCode, &c.Address,
			&c.Phone, &c.Fax, &c.Industry, &c.EmployeeCount, &c.EstablishedDate,
			&c.WebsiteURL, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
