package jwt

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "bimbelin-test",
	}

	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "student@example.com", models.RoleStudent, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), fmt.Sprintf("%v", (*claims)["user_id"]))
	assert.Equal(t, "student@example.com", (*claims)["email"])
	assert.Equal(t, models.RoleStudent, (*claims)["role"])
	assert.Equal(t, "bimbelin-test", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "bimbelin-test",
	}

	tokenString, _, err := GenerateToken(uuid.New(), "teacher@example.com", models.RoleTeacher, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: -5,
		Issuer:     "bimbelin-test",
	}

	tokenString, _, err := GenerateToken(uuid.New(), "parent@example.com", models.RoleParent, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenGarbage(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
