package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/crm-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "crm-api-test"
)

func TestGenerateYParse_RoundTrip(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, 42, "tanaka", "Tanaka Taro", "user", testIssuer, 24)
	require.NoError(t, err, "debe generarse un token válido")
	require.NotEmpty(t, token)

	claims, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err, "el token recién emitido debe parsear")

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "tanaka", claims.LoginID)
	assert.Equal(t, "Tanaka Taro", claims.Name)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, 1, "admin", "Admin", "admin", testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-distinto", token)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	// expHours negativo produce un token ya vencido.
	token, err := pkgjwt.Generate(testSecret, 1, "admin", "Admin", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "admin", "Admin", "admin", testIssuer, 24)
	assert.Error(t, err, "no debe emitirse un token sin secret")
}
