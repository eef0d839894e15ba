package logic

import (
	"testing"
	"time"

	"github.com/blues/pts/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserLogic(env *testEnv) *UserLogic {
	tokenManager := auth.NewTokenManager("test-secret", 30*time.Minute)
	return NewUserLogic(env.users, env.tokens, tokenManager, 24*time.Hour)
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t)
	userLogic := newUserLogic(env)

	user, err := userLogic.Signup("Anna@Example.com", "Anna", "Reed", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.NotEqual(t, "longenough", user.PasswordHash)
	assert.True(t, user.IsActive)

	_, err = userLogic.Signup("anna@example.com", "Anna", "Reed", "longenough")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = userLogic.Signup("not-an-email", "Anna", "Reed", "longenough")
	assert.True(t, IsValidation(err))

	_, err = userLogic.Signup("b@example.com", "", "Reed", "longenough")
	assert.True(t, IsValidation(err))

	_, err = userLogic.Signup("b@example.com", "Anna", "Reed", "short")
	assert.True(t, IsValidation(err))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	userLogic := newUserLogic(env)

	_, err := userLogic.Signup("anna@example.com", "Anna", "Reed", "longenough")
	require.NoError(t, err)

	_, _, err = userLogic.Login("anna@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = userLogic.Login("nobody@example.com", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	pair, user, err := userLogic.Login("anna@example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshRotation(t *testing.T) {
	env := newTestEnv(t)
	userLogic := newUserLogic(env)

	_, err := userLogic.Signup("anna@example.com", "Anna", "Reed", "longenough")
	require.NoError(t, err)
	pair, _, err := userLogic.Login("anna@example.com", "longenough")
	require.NoError(t, err)

	next, err := userLogic.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// Each refresh token is single-use.
	_, err = userLogic.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = userLogic.Refresh("garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
