package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "host")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "host", claims.Role)
	assert.Equal(t, "venuehub", claims.Issuer)
}

func TestService_RejectsWrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(1, "client")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestService_RejectsExpired(t *testing.T) {
	token, err := New("secret", -time.Minute).GenerateToken(1, "client")
	require.NoError(t, err)

	_, err = New("secret", -time.Minute).ValidateToken(token)
	assert.Error(t, err)
}
