package usecase

import (
	"time"

	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// DefaultNextActionDays ventana por defecto de la vista de próximas acciones.
const DefaultNextActionDays = 30

// ActivityUseCase aplica reglas de negocio para actividades y sus vistas de
// seguimiento (próximas acciones y acciones vencidas).
type ActivityUseCase struct {
	activities repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso con el puerto de persistencia.
func NewActivityUseCase(activities repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activities: activities}
}

// ListByCompany devuelve las actividades no borradas de una empresa.
func (uc *ActivityUseCase) ListByCompany(companyID int64) (*dto.ActivityListResponse, error) {
	activities, err := uc.activities.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.ActivityListResponse{Activities: make([]dto.ActivityResponse, 0, len(activities))}
	for _, a := range activities {
		out.Activities = append(out.Activities, *toActivityResponse(a))
	}
	return out, nil
}

// Get devuelve una actividad por ID. nil si no existe o está borrada.
func (uc *ActivityUseCase) Get(activityID int64) (*dto.ActivityResponse, error) {
	activity, err := uc.activities.GetByID(activityID)
	if err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// Create registra una actividad en la empresa autorada por el usuario dado.
func (uc *ActivityUseCase) Create(companyID, userID int64, in dto.SaveActivityRequest) (int64, error) {
	activity, err := activityFromRequest(in)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	activity.CompanyID = companyID
	activity.UserID = userID
	activity.CreatedAt = now
	activity.UpdatedAt = now
	return uc.activities.Create(activity)
}

// Update modifica una actividad existente. El autor no cambia.
func (uc *ActivityUseCase) Update(activityID int64, in dto.SaveActivityRequest) error {
	existing, err := uc.activities.GetByID(activityID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	activity, err := activityFromRequest(in)
	if err != nil {
		return err
	}
	activity.ID = activityID
	activity.UpdatedAt = time.Now()
	return uc.activities.Update(activity)
}

// Delete borra lógicamente una actividad.
func (uc *ActivityUseCase) Delete(activityID int64) error {
	existing, err := uc.activities.GetByID(activityID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.activities.SoftDelete(activityID)
}

// NextActions devuelve las actividades con próxima acción dentro de la
// ventana de días, ascendentes por fecha. Un admin ve las de todos; un
// usuario normal solo las suyas.
func (uc *ActivityUseCase) NextActions(id authz.Identity, days int) (*dto.NextActionListResponse, error) {
	if days <= 0 {
		days = DefaultNextActionDays
	}
	activities, err := uc.activities.NextActions(authorFilter(id), days)
	if err != nil {
		return nil, err
	}
	out := &dto.NextActionListResponse{NextActions: make([]dto.ActivityResponse, 0, len(activities))}
	for _, a := range activities {
		out.NextActions = append(out.NextActions, *toActivityResponse(a))
	}
	return out, nil
}

// Overdue devuelve las actividades con próxima acción vencida (fecha < hoy),
// con el mismo alcance por identidad que NextActions.
func (uc *ActivityUseCase) Overdue(id authz.Identity) (*dto.OverdueListResponse, error) {
	activities, err := uc.activities.Overdue(authorFilter(id))
	if err != nil {
		return nil, err
	}
	out := &dto.OverdueListResponse{OverdueActions: make([]dto.ActivityResponse, 0, len(activities))}
	for _, a := range activities {
		out.OverdueActions = append(out.OverdueActions, *toActivityResponse(a))
	}
	return out, nil
}

// authorFilter traduce la identidad al filtro de autor: nil = sin filtro (admin).
func authorFilter(id authz.Identity) *int64 {
	if id.IsAdmin() {
		return nil
	}
	userID := id.UserID
	return &userID
}

func activityFromRequest(in dto.SaveActivityRequest) (*entity.Activity, error) {
	activityDate, err := dto.ParseDate(in.ActivityDate)
	if err != nil || activityDate == nil {
		return nil, domain.ErrInvalidInput
	}
	nextAction, err := dto.ParseDate(in.NextActionDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Activity{
		ActivityDate:      *activityDate,
		ActivityType:      in.ActivityType,
		Content:           in.Content,
		NextActionDate:    nextAction,
		NextActionContent: in.NextActionContent,
	}, nil
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	date := a.ActivityDate
	return &dto.ActivityResponse{
		ActivityID:        a.ID,
		CompanyID:         a.CompanyID,
		UserID:            a.UserID,
		ActivityDate:      dto.FormatDate(&date),
		ActivityType:      a.ActivityType,
		Content:           a.Content,
		NextActionDate:    dto.FormatDate(a.NextActionDate),
		NextActionContent: a.NextActionContent,
		UserName:          a.UserName,
		CompanyName:       a.CompanyName,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}
