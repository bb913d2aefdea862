package usecase

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas, incluyendo el
// alcance por identidad en los listados y la gestión de asignaciones.
type CompanyUseCase struct {
	companies   repository.CompanyRepository
	assignments repository.AssignmentRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, assignments repository.AssignmentRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, assignments: assignments}
}

// List devuelve empresas paginadas según el alcance de la identidad: admin ve
// todas, un usuario normal solo sus asignadas vigentes. El total es siempre
// un COUNT real, también en la rama de usuario normal.
func (uc *CompanyUseCase) List(id authz.Identity, scope authz.Scope, search string, page, limit int) (*dto.CompanyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit
	// Los campos kana se guardan normalizados NFC; normalizar también el
	// término de búsqueda para que el LIKE compare la misma forma.
	search = norm.NFC.String(search)

	var (
		companies []*entity.Company
		total     int
		err       error
	)
	if scope.All {
		companies, err = uc.companies.List(search, limit, offset)
		if err != nil {
			return nil, err
		}
		total, err = uc.companies.Count(search)
	} else {
		companies, err = uc.companies.ListByUser(scope.UserID, search, limit, offset)
		if err != nil {
			return nil, err
		}
		total, err = uc.companies.CountByUser(scope.UserID, search)
	}
	if err != nil {
		return nil, err
	}

	out := &dto.CompanyListResponse{
		Companies:  make([]dto.CompanyResponse, 0, len(companies)),
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}
	for _, c := range companies {
		out.Companies = append(out.Companies, *toCompanyResponse(c))
	}
	return out, nil
}

// Get devuelve la empresa con sus asignados vigentes. nil si no existe o está borrada.
func (uc *CompanyUseCase) Get(companyID int64) (*dto.CompanyDetailResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	assigned, err := uc.assignments.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyDetailResponse{
		CompanyResponse: *toCompanyResponse(company),
		AssignedUsers:   make([]dto.AssignmentResponse, 0, len(assigned)),
	}
	for _, a := range assigned {
		out.AssignedUsers = append(out.AssignedUsers, *toAssignmentResponse(a))
	}
	return out, nil
}

// Create da de alta una empresa. Si el creador no es admin queda asignado
// automáticamente como responsable principal.
func (uc *CompanyUseCase) Create(id authz.Identity, in dto.SaveCompanyRequest) (int64, error) {
	company, err := companyFromRequest(in)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	companyID, err := uc.companies.Create(company)
	if err != nil {
		return 0, err
	}
	if !id.IsAdmin() {
		if _, err := uc.assignments.Assign(companyID, id.UserID, true, today()); err != nil {
			return 0, err
		}
	}
	return companyID, nil
}

// Update modifica una empresa existente. ErrNotFound si no existe o está borrada.
func (uc *CompanyUseCase) Update(companyID int64, in dto.SaveCompanyRequest) error {
	existing, err := uc.companies.GetByID(companyID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	company, err := companyFromRequest(in)
	if err != nil {
		return err
	}
	company.ID = companyID
	company.UpdatedAt = time.Now()
	return uc.companies.Update(company)
}

// Delete borra lógicamente una empresa.
func (uc *CompanyUseCase) Delete(companyID int64) error {
	existing, err := uc.companies.GetByID(companyID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.companies.SoftDelete(companyID)
}

// AssignUser asigna un responsable a la empresa con fecha de inicio hoy.
func (uc *CompanyUseCase) AssignUser(companyID, userID int64, isPrimary bool) error {
	_, err := uc.assignments.Assign(companyID, userID, isPrimary, today())
	return err
}

// UnassignUser cierra las asignaciones vigentes del par (empresa, usuario).
func (uc *CompanyUseCase) UnassignUser(companyID, userID int64) error {
	return uc.assignments.Unassign(companyID, userID)
}

// SetPrimary convierte al usuario en responsable principal único de la empresa.
func (uc *CompanyUseCase) SetPrimary(companyID, userID int64) error {
	return uc.assignments.SetPrimary(companyID, userID)
}

func companyFromRequest(in dto.SaveCompanyRequest) (*entity.Company, error) {
	established, err := dto.ParseDate(in.EstablishedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Company{
		Name:            norm.NFC.String(in.CompanyName),
		NameKana:        norm.NFC.String(in.CompanyNameKana),
		PostalCode:      in.PostalCode,
		Address:         in.Address,
		Phone:           in.Phone,
		Fax:             in.Fax,
		Industry:        in.Industry,
		EmployeeCount:   in.EmployeeCount,
		EstablishedDate: established,
		WebsiteURL:      in.WebsiteURL,
		Notes:           in.Notes,
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		CompanyID:       c.ID,
		CompanyName:     c.Name,
		CompanyNameKana: c.NameKana,
		PostalCode:      c.PostalCode,
		Address:         c.Address,
		Phone:           c.Phone,
		Fax:             c.Fax,
		Industry:        c.Industry,
		EmployeeCount:   c.EmployeeCount,
		EstablishedDate: dto.FormatDate(c.EstablishedDate),
		WebsiteURL:      c.WebsiteURL,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toAssignmentResponse(a *entity.Assignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	start := a.StartDate
	return &dto.AssignmentResponse{
		AssignmentID: a.ID,
		CompanyID:    a.CompanyID,
		UserID:       a.UserID,
		IsPrimary:    a.IsPrimary,
		StartDate:    dto.FormatDate(&start),
		EndDate:      dto.FormatDate(a.EndDate),
		UserName:     a.UserName,
		Email:        a.UserEmail,
		CompanyName:  a.CompanyName,
	}
}

// today devuelve la fecha de hoy truncada a medianoche local.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
