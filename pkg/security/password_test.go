package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-backend/pkg/security"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, security.CheckPasswordHash("secret1", hash))
	assert.False(t, security.CheckPasswordHash("secret2", hash))
}

func TestHashPassword_SaltRandomized(t *testing.T) {
	h1, err := security.HashPassword("same-password")
	require.NoError(t, err)
	h2, err := security.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, security.CheckPasswordHash("same-password", h1))
	assert.True(t, security.CheckPasswordHash("same-password", h2))
}

func TestCheckPasswordHash_MalformedDigest(t *testing.T) {
	assert.False(t, security.CheckPasswordHash("anything", "not-a-bcrypt-digest"))
	assert.False(t, security.CheckPasswordHash("anything", ""))
}

func TestCheckPasswordHash_EmptyPasswordEmptyHash(t *testing.T) {
	// Google-provisioned users store an empty hash; a blank password must
	// never authenticate them.
	assert.False(t, security.CheckPasswordHash("", ""))
}
