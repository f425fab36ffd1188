package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		expiry time.Duration
	}{
		{
			name:   "valid parameters",
			secret: "access-secret-key",
			expiry: 24 * time.Hour,
		},
		{
			name:   "empty secret",
			secret: "",
			expiry: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expiry)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.AccessTokenSecret)
			assert.Equal(t, tt.expiry, ts.AccessTokenExpiry)
			assert.Equal(t, tt.expiry, ts.Expiry())
		})
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := NewTokenService("test-access-secret", 15*time.Minute)

	beforeGenerate := time.Now()
	token, err := ts.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.True(t, claims.ExpiresAt.After(beforeGenerate.Add(14*time.Minute)))
	assert.True(t, claims.IssuedAt.Before(time.Now().Add(time.Second)))
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := NewTokenService("correct-secret", 15*time.Minute)
	token, err := ts.Generate("user-123")
	require.NoError(t, err)

	other := NewTokenService("wrong-secret", 15*time.Minute)
	claims, err := other.Verify(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-access-secret", -time.Minute)
	token, err := ts.Generate("user-123")
	require.NoError(t, err)

	claims, err := ts.Verify(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("test-access-secret", 15*time.Minute)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		claims, err := ts.Verify(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	}
}

func TestTokenService_Verify_RejectsUnsignedToken(t *testing.T) {
	ts := NewTokenService("test-access-secret", 15*time.Minute)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := ts.Verify(unsigned)

	assert.Error(t, err)
	assert.Nil(t, claims)
}
