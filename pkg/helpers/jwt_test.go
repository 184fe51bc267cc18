package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWTManager {
	return NewJWTManager("access-test-secret", "refresh-test-secret", 15*time.Minute, 24*time.Hour)
}

func TestJWTRoundtrip(t *testing.T) {
	m := newTestJWT()

	token, exp, err := m.GenerateAccessToken("alice")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWTSecretsAreDistinct(t *testing.T) {
	m := newTestJWT()

	access, _, err := m.GenerateAccessToken("alice")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)

	refresh, _, err := m.GenerateRefreshToken("alice")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("access-test-secret", "refresh-test-secret", -time.Minute, -time.Minute)

	token, _, err := m.GenerateAccessToken("alice")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsTampering(t *testing.T) {
	m := newTestJWT()
	other := NewJWTManager("completely-different", "secrets-here", 15*time.Minute, 24*time.Hour)

	token, _, err := other.GenerateAccessToken("alice")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}
