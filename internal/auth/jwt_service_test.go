package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken("user-123", "a@b.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "user-123", claims.Subject)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 14*time.Minute)
	assert.LessOrEqual(t, remaining, AccessTokenExpiry)
}

func TestJWTService_DefaultExpiry(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("user-123", "a@b.com", 0)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, DefaultTokenExpiry-time.Minute)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("user-123", "a@b.com", time.Millisecond)
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	token, err := svc.GenerateAccessToken("user-123", "a@b.com")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", token},
		{"tampered token", token + "x"},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := other.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
