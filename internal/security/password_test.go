package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("gizli-sifre")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(hash), "$argon2id$"))

	ok, err := VerifyPassword("gizli-sifre", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("yanlis-sifre", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("gizli-sifre")
	require.NoError(t, err)
	second, err := HashPassword("gizli-sifre")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", []byte("not-an-argon-hash"))
	assert.Error(t, err)
}

func TestVerifyRejectsTruncatedHash(t *testing.T) {
	hash, err := HashPassword("gizli-sifre")
	require.NoError(t, err)

	truncated := string(hash)
	truncated = truncated[:strings.LastIndex(truncated, "$")]

	_, err = VerifyPassword("gizli-sifre", []byte(truncated))
	assert.Error(t, err)
}
