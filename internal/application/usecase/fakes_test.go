package usecase_test

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican la semántica de
// los adaptadores de PostgreSQL (borrado lógico, asignaciones vigentes,
// filtros de fecha) para que los use cases se prueben sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// memUsers implementa repository.UserRepository.
type memUsers struct {
	nextID int64
	byID   map[int64]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]*entity.User{}}
}

func (m *memUsers) Create(user *entity.User) (int64, error) {
	for _, u := range m.byID {
		if u.LoginID == user.LoginID {
			return 0, domain.ErrLoginIDTaken
		}
	}
	m.nextID++
	cp := *user
	cp.ID = m.nextID
	m.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memUsers) FindActiveByID(id int64) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok || !u.IsActive {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) FindActiveByLoginID(loginID string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.LoginID == loginID && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUsers) Update(user *entity.User) error {
	if _, ok := m.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

func (m *memUsers) UpdatePassword(id int64, passwordHash string) error {
	u, ok := m.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memUsers) Deactivate(id int64) error {
	u, ok := m.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

// memCompanies implementa repository.CompanyRepository; necesita el fake de
// asignaciones para resolver ListByUser/CountByUser.
type memCompanies struct {
	nextID      int64
	byID        map[int64]*entity.Company
	assignments *memAssignments
}

func newMemCompanies(assignments *memAssignments) *memCompanies {
	return &memCompanies{byID: map[int64]*entity.Company{}, assignments: assignments}
}

func (m *memCompanies) matches(c *entity.Company, search string) bool {
	if c.IsDeleted {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(c.Name, search) || strings.Contains(c.Industry, search)
}

func (m *memCompanies) all(search string) []*entity.Company {
	var out []*entity.Company
	for _, c := range m.byID {
		if m.matches(c, search) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func page(list []*entity.Company, limit, offset int) []*entity.Company {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

func (m *memCompanies) Create(company *entity.Company) (int64, error) {
	m.nextID++
	cp := *company
	cp.ID = m.nextID
	m.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memCompanies) GetByID(id int64) (*entity.Company, error) {
	c, ok := m.byID[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCompanies) List(search string, limit, offset int) ([]*entity.Company, error) {
	return page(m.all(search), limit, offset), nil
}

func (m *memCompanies) ListByUser(userID int64, search string, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.all(search) {
		ok, _ := m.assignments.IsUserAssigned(c.ID, userID)
		if ok {
			out = append(out, c)
		}
	}
	return page(out, limit, offset), nil
}

func (m *memCompanies) Count(search string) (int, error) {
	return len(m.all(search)), nil
}

func (m *memCompanies) CountByUser(userID int64, search string) (int, error) {
	n := 0
	for _, c := range m.all(search) {
		ok, _ := m.assignments.IsUserAssigned(c.ID, userID)
		if ok {
			n++
		}
	}
	return n, nil
}

func (m *memCompanies) Update(company *entity.Company) error {
	existing, ok := m.byID[company.ID]
	if !ok || existing.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *company
	m.byID[company.ID] = &cp
	return nil
}

func (m *memCompanies) SoftDelete(id int64) error {
	c, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.IsDeleted = true
	return nil
}

// memAssignments implementa repository.AssignmentRepository.
type memAssignments struct {
	nextID int64
	rows   []*entity.Assignment
}

func newMemAssignments() *memAssignments {
	return &memAssignments{}
}

func (m *memAssignments) active(a *entity.Assignment) bool {
	return a.ActiveAt(time.Now())
}

func (m *memAssignments) Assign(companyID, userID int64, isPrimary bool, startDate time.Time) (int64, error) {
	ok, _ := m.IsUserAssigned(companyID, userID)
	if ok {
		return 0, domain.ErrDuplicateAssign
	}
	m.nextID++
	m.rows = append(m.rows, &entity.Assignment{
		ID:        m.nextID,
		CompanyID: companyID,
		UserID:    userID,
		IsPrimary: isPrimary,
		StartDate: startDate,
		CreatedAt: time.Now(),
	})
	return m.nextID, nil
}

func (m *memAssignments) Unassign(companyID, userID int64) error {
	today := startOfDay(time.Now())
	yesterday := today.AddDate(0, 0, -1)
	for _, a := range m.rows {
		if a.CompanyID == companyID && a.UserID == userID && m.active(a) {
			end := yesterday
			a.EndDate = &end
		}
	}
	return nil
}

func (m *memAssignments) SetPrimary(companyID, userID int64) error {
	for _, a := range m.rows {
		if a.CompanyID == companyID && m.active(a) {
			a.IsPrimary = a.UserID == userID
		}
	}
	return nil
}

func (m *memAssignments) IsUserAssigned(companyID, userID int64) (bool, error) {
	for _, a := range m.rows {
		if a.CompanyID == companyID && a.UserID == userID && m.active(a) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAssignments) ListByCompany(companyID int64) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range m.rows {
		if a.CompanyID == companyID && m.active(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memAssignments) ListByUser(userID int64) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range m.rows {
		if a.UserID == userID && m.active(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memActivities implementa repository.ActivityRepository con los mismos
// filtros de fecha que las consultas SQL.
type memActivities struct {
	nextID int64
	byID   map[int64]*entity.Activity
}

func newMemActivities() *memActivities {
	return &memActivities{byID: map[int64]*entity.Activity{}}
}

func (m *memActivities) Create(activity *entity.Activity) (int64, error) {
	m.nextID++
	cp := *activity
	cp.ID = m.nextID
	m.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memActivities) GetByID(id int64) (*entity.Activity, error) {
	a, ok := m.byID[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memActivities) ListByCompany(companyID int64) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range m.byID {
		if a.CompanyID == companyID && !a.IsDeleted {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActivityDate.After(out[j].ActivityDate) })
	return out, nil
}

func (m *memActivities) ListAll(limit, offset int) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range m.byID {
		if !a.IsDeleted {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActivityDate.After(out[j].ActivityDate) })
	return out, nil
}

func (m *memActivities) followUps(userID *int64, keep func(next, today time.Time) bool) []*entity.Activity {
	today := startOfDay(time.Now())
	var out []*entity.Activity
	for _, a := range m.byID {
		if a.IsDeleted || a.NextActionDate == nil {
			continue
		}
		if userID != nil && a.UserID != *userID {
			continue
		}
		if keep(startOfDay(*a.NextActionDate), today) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NextActionDate.Before(*out[j].NextActionDate)
	})
	return out
}

func (m *memActivities) NextActions(userID *int64, days int) ([]*entity.Activity, error) {
	return m.followUps(userID, func(next, today time.Time) bool {
		return !next.After(today.AddDate(0, 0, days))
	}), nil
}

func (m *memActivities) Overdue(userID *int64) ([]*entity.Activity, error) {
	return m.followUps(userID, func(next, today time.Time) bool {
		return next.Before(today)
	}), nil
}

func (m *memActivities) Update(activity *entity.Activity) error {
	existing, ok := m.byID[activity.ID]
	if !ok || existing.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *activity
	cp.CompanyID = existing.CompanyID
	cp.UserID = existing.UserID
	m.byID[activity.ID] = &cp
	return nil
}

func (m *memActivities) SoftDelete(id int64) error {
	a, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.IsDeleted = true
	return nil
}

// memQuotations implementa repository.QuotationRepository.
type memQuotations struct {
	nextID int64
	byID   map[int64]*entity.Quotation
}

func newMemQuotations() *memQuotations {
	return &memQuotations{byID: map[int64]*entity.Quotation{}}
}

func (m *memQuotations) Create(quotation *entity.Quotation) (int64, error) {
	m.nextID++
	cp := *quotation
	cp.ID = m.nextID
	m.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memQuotations) GetByID(id int64) (*entity.Quotation, error) {
	q, ok := m.byID[id]
	if !ok || q.IsDeleted {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (m *memQuotations) ListByCompany(companyID int64) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range m.byID {
		if q.CompanyID == companyID && !q.IsDeleted {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memQuotations) ListAll(limit, offset int) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range m.byID {
		if !q.IsDeleted {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memQuotations) Update(quotation *entity.Quotation) error {
	existing, ok := m.byID[quotation.ID]
	if !ok || existing.IsDeleted {
		return domain.ErrNotFound
	}
	cp := *quotation
	m.byID[quotation.ID] = &cp
	return nil
}

func (m *memQuotations) SoftDelete(id int64) error {
	q, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.IsDeleted = true
	return nil
}

// memStore implementa usecase.FileStore guardando los archivos en memoria.
type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (m *memStore) Save(storedName string, r io.Reader) (string, int64, error) {
	var buf bytes.Buffer
	written, err := io.Copy(&buf, r)
	if err != nil {
		return "", 0, err
	}
	path := "mem://" + storedName
	m.files[path] = buf.Bytes()
	return path, written, nil
}

func (m *memStore) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}
