package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("a1", "Carla", RoleAdmin, testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.ActorID)
	assert.Equal(t, "Carla", claims.Nome)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "a1", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("c1", "Ana", RoleCliente, testSecret, 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "outro-segredo")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("c1", "Ana", RoleCliente, testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("não-é-um-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
