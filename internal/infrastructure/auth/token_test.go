package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/config"
	coremocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/core"
)

func newManager(t *testing.T, secret string, issuedAt time.Time) *TokenManager {
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(issuedAt).Maybe()

	return NewTokenManager(config.JWTConfig{
		Secret: secret,
		TTL:    time.Hour,
	}, timeProvider)
}

func TestTokenRoundTrip(t *testing.T) {
	manager := newManager(t, "test-secret", time.Now())

	token, err := manager.Generate(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "goldenia", claims.Issuer)
}

func TestTokenRegularUser(t *testing.T) {
	manager := newManager(t, "test-secret", time.Now())

	token, err := manager.Generate(7, false)
	require.NoError(t, err)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := newManager(t, "secret-a", time.Now())
	verifier := newManager(t, "secret-b", time.Now())

	token, err := issuer.Generate(1, false)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	manager := newManager(t, "test-secret", time.Now().Add(-2*time.Hour))

	token, err := manager.Generate(1, false)
	require.NoError(t, err)

	claims, err := manager.Verify(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	manager := newManager(t, "test-secret", time.Now())

	claims, err := manager.Verify("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
