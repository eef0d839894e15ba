package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)

	token, err := manager.Issue(42, time.Now())
	require.NoError(t, err)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute)

	token, err := manager.Issue(42, time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Minute).Issue(42, time.Now())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute)
	_, err := manager.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenHashing(t *testing.T) {
	plain, hash := NewRefreshToken()
	assert.NotEmpty(t, plain)
	assert.NotEqual(t, plain, hash)
	assert.Equal(t, hash, HashRefreshToken(plain))

	otherPlain, otherHash := NewRefreshToken()
	assert.NotEqual(t, plain, otherPlain)
	assert.NotEqual(t, hash, otherHash)
}
