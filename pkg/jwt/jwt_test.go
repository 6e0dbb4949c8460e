package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/farmaplus/farmacia-api/pkg/jwt"
)

const secret = "clave-de-pruebas"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", "mgarcia", "cajero", "farmacia-test", 60)
	require.NoError(t, err)

	userID, username, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "mgarcia", username)
	assert.Equal(t, "cajero", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", "mgarcia", "admin", "farmacia-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otra-clave", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", "mgarcia", "admin", "farmacia-test", -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", "mgarcia", "admin", "farmacia-test", 60)
	assert.Error(t, err)
}
