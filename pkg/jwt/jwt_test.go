package jwt

import (
	"testing"
	"time"

	"serviturnos-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "Ana", "Gomez", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "Gomez", claims.LastName)
	assert.Equal(t, "customer", claims.UserType)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "Leo", "Diaz", "professional")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := testService()
	other := NewJWTService(config.JWTConfig{Secret: "another-secret", AccessExpiry: time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "Ana", "Gomez", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
