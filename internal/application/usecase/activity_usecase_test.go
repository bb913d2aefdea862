package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func day(offset int) time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

// seedActivity inserta una actividad directamente en el fake.
func seedActivity(t *testing.T, repo *memActivities, userID int64, nextAction *time.Time) int64 {
	t.Helper()
	id, err := repo.Create(&entity.Activity{
		CompanyID:      10,
		UserID:         userID,
		ActivityDate:   day(-1),
		Content:        "visita",
		NextActionDate: nextAction,
	})
	require.NoError(t, err)
	return id
}

func datePtr(t time.Time) *time.Time { return &t }

func TestActivityCreate_RequiereFecha(t *testing.T) {
	uc := usecase.NewActivityUseCase(newMemActivities())

	_, err := uc.Create(10, 1, dto.SaveActivityRequest{Content: "visita"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "activity_date es obligatoria")

	_, err = uc.Create(10, 1, dto.SaveActivityRequest{ActivityDate: "2026-08-01", Content: "visita"})
	assert.NoError(t, err)
}

func TestActivityNextActions_VentanaYOrden(t *testing.T) {
	repo := newMemActivities()
	uc := usecase.NewActivityUseCase(repo)

	seedActivity(t, repo, 1, datePtr(day(5)))
	seedActivity(t, repo, 1, datePtr(day(-2)))  // vencida: también entra en la ventana
	seedActivity(t, repo, 1, datePtr(day(45)))  // fuera de la ventana de 30 días
	seedActivity(t, repo, 1, nil)               // sin próxima acción
	seedActivity(t, repo, 2, datePtr(day(3)))   // de otro autor

	out, err := uc.NextActions(userIdentity, 30)
	require.NoError(t, err)
	require.Len(t, out.NextActions, 2, "solo las del autor dentro de la ventana")
	assert.Equal(t, dto.FormatDate(datePtr(day(-2))), out.NextActions[0].NextActionDate,
		"orden ascendente por fecha de próxima acción")

	// Admin ve las de todos los autores.
	outAdmin, err := uc.NextActions(adminIdentity, 30)
	require.NoError(t, err)
	assert.Len(t, outAdmin.NextActions, 3)
}

func TestActivityNextActions_DiasNoPositivoUsaDefecto(t *testing.T) {
	repo := newMemActivities()
	uc := usecase.NewActivityUseCase(repo)

	seedActivity(t, repo, 1, datePtr(day(usecase.DefaultNextActionDays)))
	seedActivity(t, repo, 1, datePtr(day(usecase.DefaultNextActionDays+1)))

	out, err := uc.NextActions(userIdentity, 0)
	require.NoError(t, err)
	assert.Len(t, out.NextActions, 1, "days <= 0 debe caer a la ventana por defecto")
}

func TestActivityOverdue_ExcluyeHoyYFuturas(t *testing.T) {
	repo := newMemActivities()
	uc := usecase.NewActivityUseCase(repo)

	seedActivity(t, repo, 1, datePtr(day(-1))) // vencida
	seedActivity(t, repo, 1, datePtr(day(0)))  // hoy: aún no vencida
	seedActivity(t, repo, 1, datePtr(day(1)))  // futura
	seedActivity(t, repo, 1, nil)              // sin seguimiento

	out, err := uc.Overdue(userIdentity)
	require.NoError(t, err)
	require.Len(t, out.OverdueActions, 1)
	assert.Equal(t, dto.FormatDate(datePtr(day(-1))), out.OverdueActions[0].NextActionDate)
}

// Toda acción vencida sigue siendo una próxima acción pendiente: el conjunto
// vencido debe ser subconjunto de la vista de próximas.
func TestActivityOverdue_SubconjuntoDeNextActions(t *testing.T) {
	repo := newMemActivities()
	uc := usecase.NewActivityUseCase(repo)

	for _, offset := range []int{-10, -1, 0, 7, 29, 31} {
		seedActivity(t, repo, 1, datePtr(day(offset)))
	}

	next, err := uc.NextActions(userIdentity, 30)
	require.NoError(t, err)
	overdue, err := uc.Overdue(userIdentity)
	require.NoError(t, err)

	inNext := map[int64]bool{}
	for _, a := range next.NextActions {
		inNext[a.ActivityID] = true
	}
	for _, a := range overdue.OverdueActions {
		assert.True(t, inNext[a.ActivityID],
			"toda actividad vencida debe aparecer también en próximas acciones")
	}
}

func TestActivityDelete_EsLogicoYDesapareceDeLasVistas(t *testing.T) {
	repo := newMemActivities()
	uc := usecase.NewActivityUseCase(repo)

	id := seedActivity(t, repo, 1, datePtr(day(-3)))
	require.NoError(t, uc.Delete(id))

	out, err := uc.Get(id)
	require.NoError(t, err)
	assert.Nil(t, out)

	overdue, err := uc.Overdue(userIdentity)
	require.NoError(t, err)
	assert.Empty(t, overdue.OverdueActions, "una actividad borrada no cuenta como vencida")
}

func TestActivityUpdate_NoCambiaElAutor(t *testing.T) {
	repo := newMemActivities()
	uc := usecase.NewActivityUseCase(repo)

	id := seedActivity(t, repo, 1, nil)
	require.NoError(t, uc.Update(id, dto.SaveActivityRequest{
		ActivityDate: "2026-08-15",
		Content:      "llamada de seguimiento",
	}))

	out, err := uc.Get(id)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(1), out.UserID, "el autor original se conserva")
	assert.Equal(t, "llamada de seguimiento", out.Content)
}

func TestActivityUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewActivityUseCase(newMemActivities())
	err := uc.Update(404, dto.SaveActivityRequest{ActivityDate: "2026-08-15", Content: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
