package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

const selectQuotation = `
	SELECT q.quotation_id, q.company_id, q.user_id, q.title, q.file_name, q.stored_name,
	       q.file_path, q.file_size, q.file_type, q.amount, q.quotation_date, q.notes,
	       q.created_at, q.updated_at,
	       COALESCE(u.name, ''), COALESCE(c.company_name, '')
	FROM quotations q
	LEFT JOIN users u ON q.user_id = u.user_id
	LEFT JOIN companies c ON q.company_id = c.company_id`

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL.
// El monto es NUMERIC y se escanea a shopspring/decimal vía el codec del pool.
type QuotationRepo struct {
	pool *pgxpool.Pool
}

// NewQuotationRepository construye el adaptador de persistencia para cotizaciones.
func NewQuotationRepository(pool *pgxpool.Pool) *QuotationRepo {
	return &QuotationRepo{pool: pool}
}

// Create persiste los metadatos de una cotización y devuelve el ID generado.
func (r *QuotationRepo) Create(quotation *entity.Quotation) (int64, error) {
	query := `
		INSERT INTO quotations (company_id, user_id, title, file_name, stored_name,
			file_path, file_size, file_type, amount, quotation_date, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING quotation_id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		quotation.CompanyID, quotation.UserID, quotation.Title, quotation.FileName,
		quotation.StoredName, quotation.FilePath, quotation.FileSize, quotation.FileType,
		quotation.Amount, quotation.QuotationDate, quotation.Notes,
		quotation.CreatedAt, quotation.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert quotation: %w", err)
	}
	return id, nil
}

// GetByID obtiene una cotización no borrada por ID con nombres resueltos.
func (r *QuotationRepo) GetByID(id int64) (*entity.Quotation, error) {
	query := selectQuotation + ` WHERE q.quotation_id = $1 AND q.is_deleted = false`
	rows, err := r.pool.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	defer rows.Close()
	list, err := scanQuotations(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListByCompany devuelve las cotizaciones no borradas de una empresa,
// recientes primero.
func (r *QuotationRepo) ListByCompany(companyID int64) ([]*entity.Quotation, error) {
	query := selectQuotation + `
		WHERE q.company_id = $1 AND q.is_deleted = false
		ORDER BY q.quotation_date DESC NULLS LAST, q.created_at DESC`
	return r.queryQuotations(query, companyID)
}

// ListAll devuelve todas las cotizaciones no borradas, paginadas (vista admin).
func (r *QuotationRepo) ListAll(limit, offset int) ([]*entity.Quotation, error) {
	query := selectQuotation + `
		WHERE q.is_deleted = false
		ORDER BY q.quotation_date DESC NULLS LAST, q.created_at DESC
		LIMIT $1 OFFSET $2`
	return r.queryQuotations(query, limit, offset)
}

// Update actualiza los metadatos editables de una cotización no borrada.
func (r *QuotationRepo) Update(quotation *entity.Quotation) error {
	query := `
		UPDATE quotations
		SET title = $2, amount = $3, quotation_date = $4, notes = $5, updated_at = $6
		WHERE quotation_id = $1 AND is_deleted = false`
	_, err := r.pool.Exec(context.Background(), query,
		quotation.ID, quotation.Title, quotation.Amount, quotation.QuotationDate,
		quotation.Notes, quotation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return nil
}

// SoftDelete marca la cotización como borrada; la fila y el archivo persisten.
func (r *QuotationRepo) SoftDelete(id int64) error {
	query := `UPDATE quotations SET is_deleted = true, updated_at = now() WHERE quotation_id = $1`
	_, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}

func (r *QuotationRepo) queryQuotations(query string, args ...any) ([]*entity.Quotation, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	return scanQuotations(rows)
}

func scanQuotations(rows pgx.Rows) ([]*entity.Quotation, error) {
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(
			&q.ID, &q.CompanyID, &q.UserID, &q.Title, &q.FileName, &q.StoredName,
			&q.FilePath, &q.FileSize, &q.FileType, &q.Amount, &q.QuotationDate, &q.Notes,
			&q.CreatedAt, &q.UpdatedAt, &q.UserName, &q.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}
