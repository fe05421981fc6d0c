package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syxhsssss/pet-management-system/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, 42, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, 1, models.RoleUser)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", -time.Minute, 1, models.RoleUser)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("test-secret", "not.a.token")
	assert.Error(t, err)
}
