package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-9", api.RoleModerator, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-9", claims.UserID)
	assert.Equal(t, api.RoleModerator, claims.Role)
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-9", api.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-9", api.RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ParseToken("not-a-jwt", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
