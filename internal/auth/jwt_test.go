package auth

import (
	"testing"

	"inventory-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-0123456789"

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Email: "staff@example.com", Role: models.RoleStaff}

	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, models.RoleStaff, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Email: "staff@example.com", Role: models.RoleStaff}

	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	_, err = ParseToken("another-secret-that-is-also-long-enough-x", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.Error(t, err)
}
