package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamtrack/internal/shared/authorization"
)

func newTestJWTService() *JWTService {
	return NewJWTService("test-secret", "teamtrack", "teamtrack-api", 60)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestJWTService()

	token, expiresAt, err := svc.Generate(42, "jdoe", "jdoe@example.com", authorization.RoleDeveloper)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "jdoe@example.com", claims.Email)
	assert.Equal(t, authorization.RoleDeveloper, claims.Role)
	assert.Equal(t, "teamtrack", claims.Issuer)
}

func TestJWTService_ResetToken(t *testing.T) {
	svc := newTestJWTService()

	token, expiresAt, err := svc.GenerateResetToken(42, "jdoe@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	t.Run("round-trips through VerifyResetToken", func(t *testing.T) {
		claims, err := svc.VerifyResetToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "jdoe@example.com", claims.Email)
	})

	t.Run("is not a bearer token", func(t *testing.T) {
		_, err := svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("a login token is not a reset token", func(t *testing.T) {
		bearer, _, err := svc.Generate(42, "jdoe", "jdoe@example.com", authorization.RoleDeveloper)
		require.NoError(t, err)
		_, err = svc.VerifyResetToken(bearer)
		assert.Error(t, err)
	})
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	token, _, err := svc.Generate(1, "admin", "admin@teamtrackpro.com", authorization.RoleAdmin)
	require.NoError(t, err)

	other := NewJWTService("different-secret", "teamtrack", "teamtrack-api", 60)
	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_WrongIssuer(t *testing.T) {
	svc := NewJWTService("test-secret", "someone-else", "teamtrack-api", 60)
	token, _, err := svc.Generate(1, "admin", "admin@teamtrackpro.com", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = newTestJWTService().Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_WrongAudience(t *testing.T) {
	svc := NewJWTService("test-secret", "teamtrack", "other-api", 60)
	token, _, err := svc.Generate(1, "admin", "admin@teamtrackpro.com", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = newTestJWTService().Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := newTestJWTService().Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("S3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret-password", hash)

	assert.NoError(t, hasher.Verify("S3cret-password", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
}
