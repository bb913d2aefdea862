package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `contact_id, company_id, name, name_kana, department, position,
		email, phone, mobile_phone, notes, created_at, updated_at`

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// Create persiste un nuevo contacto y devuelve el ID generado.
func (r *ContactRepo) Create(contact *entity.Contact) (int64, error) {
	query := `
		INSERT INTO contacts (company_id, name, name_kana, department, position,
			email, phone, mobile_phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING contact_id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		contact.CompanyID, contact.Name, contact.NameKana, contact.Department, contact.Position,
		contact.Email, contact.Phone, contact.MobilePhone, contact.Notes,
		contact.CreatedAt, contact.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// GetByID obtiene un contacto no borrado por ID.
func (r *ContactRepo) GetByID(id int64) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1 AND is_deleted = false`
	var c entity.Contact
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.NameKana, &c.Department, &c.Position,
		&c.Email, &c.Phone, &c.MobilePhone, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// ListByCompany devuelve los contactos no borrados de una empresa.
func (r *ContactRepo) ListByCompany(companyID int64) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		WHERE company_id = $1 AND is_deleted = false
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.NameKana, &c.Department, &c.Position,
			&c.Email, &c.Phone, &c.MobilePhone, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un contacto no borrado.
func (r *ContactRepo) Update(contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, name_kana = $3, department = $4, position = $5,
		    email = $6, phone = $7, mobile_phone = $8, notes = $9, updated_at = $10
		WHERE contact_id = $1 AND is_deleted = false`
	_, err := r.pool.Exec(context.Background(), query,
		contact.ID, contact.Name, contact.NameKana, contact.Department, contact.Position,
		contact.Email, contact.Phone, contact.MobilePhone, contact.Notes, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// SoftDelete marca el contacto como borrado; la fila persiste.
func (r *ContactRepo) SoftDelete(id int64) error {
	query := `UPDATE contacts SET is_deleted = true, updated_at = now() WHERE contact_id = $1`
	_, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
