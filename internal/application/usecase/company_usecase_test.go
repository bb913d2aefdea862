package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

var (
	adminIdentity = authz.Identity{UserID: 99, Role: "admin"}
	userIdentity  = authz.Identity{UserID: 1, Role: "user"}
)

func newCompanyFixture() (*usecase.CompanyUseCase, *memCompanies, *memAssignments) {
	assignments := newMemAssignments()
	companies := newMemCompanies(assignments)
	return usecase.NewCompanyUseCase(companies, assignments), companies, assignments
}

func TestCompanyCreate_AdminNoSeAutoasigna(t *testing.T) {
	uc, _, assignments := newCompanyFixture()

	companyID, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "ACME"})
	require.NoError(t, err)
	require.NotZero(t, companyID)

	ok, _ := assignments.IsUserAssigned(companyID, adminIdentity.UserID)
	assert.False(t, ok, "un admin crea la empresa sin quedar asignado")
}

func TestCompanyCreate_UsuarioQuedaComoPrincipal(t *testing.T) {
	uc, _, assignments := newCompanyFixture()

	companyID, err := uc.Create(userIdentity, dto.SaveCompanyRequest{CompanyName: "ACME"})
	require.NoError(t, err)

	assigned, err := assignments.ListByCompany(companyID)
	require.NoError(t, err)
	require.Len(t, assigned, 1, "el creador debe quedar asignado")
	assert.Equal(t, userIdentity.UserID, assigned[0].UserID)
	assert.True(t, assigned[0].IsPrimary, "el creador queda como responsable principal")
}

// Escenario completo: crear con todos los campos y releer por ID.
func TestCompanyCreateYGet(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	employees := 120
	companyID, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{
		CompanyName:     "株式会社サンプル",
		CompanyNameKana: "カブシキガイシャサンプル",
		Industry:        "IT",
		EmployeeCount:   &employees,
		EstablishedDate: "2001-04-01",
	})
	require.NoError(t, err)

	out, err := uc.Get(companyID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, companyID, out.CompanyID)
	assert.Equal(t, "株式会社サンプル", out.CompanyName)
	assert.Equal(t, "IT", out.Industry)
	assert.Equal(t, &employees, out.EmployeeCount)
	assert.Equal(t, "2001-04-01", out.EstablishedDate)
	assert.Empty(t, out.AssignedUsers)
}

func TestCompanyCreate_FechaInvalida(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	_, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{
		CompanyName:     "ACME",
		EstablishedDate: "01/04/2001",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyList_TotalRealParaUsuarioNormal(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	// 3 empresas creadas por el usuario (queda asignado) + 2 de otros.
	for i := 0; i < 3; i++ {
		_, err := uc.Create(userIdentity, dto.SaveCompanyRequest{CompanyName: "Mía"})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "Ajena"})
		require.NoError(t, err)
	}

	out, err := uc.List(userIdentity, authz.Scope{UserID: userIdentity.UserID}, "", 1, 2)
	require.NoError(t, err)
	assert.Len(t, out.Companies, 2, "la página respeta el límite")
	assert.Equal(t, 3, out.Total, "el total cuenta todas las asignadas, no solo la página")
	assert.Equal(t, 2, out.TotalPages)

	out, err = uc.List(adminIdentity, authz.Scope{All: true}, "", 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Total, "admin ve todas las empresas")
}

func TestCompanyList_BusquedaPorNombre(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	_, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "Industrias Norte"})
	require.NoError(t, err)
	_, err = uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "Comercial Sur"})
	require.NoError(t, err)

	out, err := uc.List(adminIdentity, authz.Scope{All: true}, "Norte", 1, 50)
	require.NoError(t, err)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "Industrias Norte", out.Companies[0].CompanyName)
}

func TestCompanyDelete_EsLogico(t *testing.T) {
	uc, companies, _ := newCompanyFixture()

	companyID, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "ACME"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(companyID))

	out, err := uc.Get(companyID)
	require.NoError(t, err)
	assert.Nil(t, out, "una empresa borrada no debe aparecer en consultas")
	assert.True(t, companies.byID[companyID].IsDeleted, "la fila persiste marcada como borrada")

	assert.ErrorIs(t, uc.Delete(companyID), domain.ErrNotFound,
		"borrar dos veces debe reportar not found")
}

func TestCompanyAssign_DuplicadoVigente(t *testing.T) {
	uc, _, _ := newCompanyFixture()

	companyID, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "ACME"})
	require.NoError(t, err)

	require.NoError(t, uc.AssignUser(companyID, 1, false))
	err = uc.AssignUser(companyID, 1, false)
	assert.ErrorIs(t, err, domain.ErrDuplicateAssign,
		"no puede haber dos asignaciones vigentes del mismo par")

	// Tras cerrar la asignación, se puede volver a asignar.
	require.NoError(t, uc.UnassignUser(companyID, 1))
	assert.NoError(t, uc.AssignUser(companyID, 1, false))
}

func TestCompanySetPrimary_DejaExactamenteUnPrincipal(t *testing.T) {
	uc, _, assignments := newCompanyFixture()

	companyID, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "ACME"})
	require.NoError(t, err)
	require.NoError(t, uc.AssignUser(companyID, 1, true))
	require.NoError(t, uc.AssignUser(companyID, 2, false))
	require.NoError(t, uc.AssignUser(companyID, 3, true)) // segundo "principal" colado

	require.NoError(t, uc.SetPrimary(companyID, 2))

	assigned, err := assignments.ListByCompany(companyID)
	require.NoError(t, err)
	primaries := 0
	for _, a := range assigned {
		if a.IsPrimary {
			primaries++
			assert.Equal(t, int64(2), a.UserID)
		}
	}
	assert.Equal(t, 1, primaries, "debe quedar exactamente un responsable principal")
}

func TestCompanyGet_IncluyeAsignadosVigentes(t *testing.T) {
	uc, _, assignments := newCompanyFixture()

	companyID, err := uc.Create(adminIdentity, dto.SaveCompanyRequest{CompanyName: "ACME"})
	require.NoError(t, err)
	require.NoError(t, uc.AssignUser(companyID, 1, true))

	// Asignación ya cerrada: no debe listarse.
	past := time.Now().AddDate(0, 0, -30)
	_, err = assignments.Assign(companyID, 2, false, past)
	require.NoError(t, err)
	require.NoError(t, uc.UnassignUser(companyID, 2))

	out, err := uc.Get(companyID)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.AssignedUsers, 1, "solo las asignaciones vigentes aparecen en el detalle")
	assert.Equal(t, int64(1), out.AssignedUsers[0].UserID)
}

func TestCompanyUpdate_NoExiste(t *testing.T) {
	uc, _, _ := newCompanyFixture()
	err := uc.Update(404, dto.SaveCompanyRequest{CompanyName: "Nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
