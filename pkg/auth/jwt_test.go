package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiry time.Duration) JWTService {
	return NewJWTService("test-secret", "vetclinic-api", "vetclinic-clients", expiry)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresAt, err := svc.GenerateToken(42, "vet@clinic.test")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "vet@clinic.test", claims.Email)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken(1, "a@b.test")
	require.NoError(t, err)

	other := NewJWTService("different-secret", "vetclinic-api", "vetclinic-clients", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "a@b.test")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	token, _, err := NewJWTService("test-secret", "someone-else", "vetclinic-clients", time.Hour).
		GenerateToken(1, "a@b.test")
	require.NoError(t, err)

	_, err = newTestService(time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newTestService(time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}
