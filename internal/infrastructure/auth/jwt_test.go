package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 30)

	token, expiresIn, err := svc.Generate("frontdesk")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(30*60), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", claims.Username)
	assert.Equal(t, "frontdesk", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", 30).Generate("frontdesk")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 30).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := NewJWTService("secret", 30).Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, hasher.Verify("hunter2", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
	assert.Error(t, hasher.Verify("hunter2", "not-a-hash"))
}
