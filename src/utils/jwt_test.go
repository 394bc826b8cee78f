package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("64abc0123456789012345678", "auditor@example.com", "auditor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64abc0123456789012345678", claims.UserID)
	assert.Equal(t, "auditor@example.com", claims.Email)
	assert.Equal(t, "auditor", claims.Role)
	assert.NotEmpty(t, claims.ID, "every token gets its own jti")
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestFreshTokensGetDistinctIDs(t *testing.T) {
	a, err := GenerateJWT("1", "a@b.c", "admin")
	require.NoError(t, err)
	b, err := GenerateJWT("1", "a@b.c", "admin")
	require.NoError(t, err)

	claimsA, err := ParseJWT(a)
	require.NoError(t, err)
	claimsB, err := ParseJWT(b)
	require.NoError(t, err)
	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
