package auth

import (
	"testing"
	"time"

	"github.com/bottleops/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-for-unit-tests-only-0001",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bottleops-test",
		MaxRefreshCount:        2,
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(t)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "admin",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := testService(t)

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Username: "admin", Role: "admin"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := testService(t)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenPair_IncrementsCountUntilLimit(t *testing.T) {
	svc := testService(t)

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Username: "admin", Role: "admin"})
	require.NoError(t, err)

	pair, err = svc.RefreshTokenPair(pair.RefreshToken, "admin", "admin")
	require.NoError(t, err)
	pair, err = svc.RefreshTokenPair(pair.RefreshToken, "admin", "admin")
	require.NoError(t, err)

	// Third refresh exceeds MaxRefreshCount of 2.
	_, err = svc.RefreshTokenPair(pair.RefreshToken, "admin", "admin")
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testService(t)
	other := NewJWTService(config.JWTConfig{
		Secret:                 "another-secret-entirely-0002-padded",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bottleops-test",
		MaxRefreshCount:        2,
	})

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Username: "admin", Role: "admin"})
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}
