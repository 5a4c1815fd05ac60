// internal/pkg/jwt/manager_test.go
package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "skadeportal",
		Audience: "skadeportal-staff",
		TTL:      time.Hour,
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	assert.Error(t, err)
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, jti, expiresAt, err := m.Generate("u1", "t1", "anna@example.se")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "t1", claims.TenantID)
	assert.Equal(t, "anna@example.se", claims.Email)
	assert.Equal(t, jti, claims.ID)
}

func TestEachTokenGetsFreshJTI(t *testing.T) {
	m, err := NewManager(testConfig())
	require.NoError(t, err)

	_, jti1, _, err := m.Generate("u1", "t1", "a@example.se")
	require.NoError(t, err)
	_, jti2, _, err := m.Generate("u1", "t1", "a@example.se")
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	m1, err := NewManager(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.Secret = "another-secret"
	m2, err := NewManager(other)
	require.NoError(t, err)

	token, _, _, err := m1.Generate("u1", "t1", "a@example.se")
	require.NoError(t, err)

	_, err = m2.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	cfg := testConfig()
	cfg.Audience = "other-portal"
	issuer, err := NewManager(cfg)
	require.NoError(t, err)

	verifier, err := NewManager(testConfig())
	require.NoError(t, err)

	token, _, _, err := issuer.Generate("u1", "t1", "a@example.se")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = -time.Minute
	m, err := NewManager(cfg)
	require.NoError(t, err)

	// A non-positive TTL falls back to the default, so force expiry by
	// issuing with a tiny TTL and waiting it out.
	cfg.TTL = time.Millisecond
	short, err := NewManager(cfg)
	require.NoError(t, err)

	token, _, _, err := short.Generate("u1", "t1", "a@example.se")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = m.Verify(token)
	assert.Error(t, err)
}
