package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, IsHashed(hash))

	// Salted: hashing the same plaintext twice yields different digests,
	// both of which verify.
	hash2, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
	assert.True(t, CheckPassword("secret1", hash))
	assert.True(t, CheckPassword("secret1", hash2))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "secret1", hash, true},
		{"wrong password", "wrong", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "secret1", "not-a-bcrypt-hash", false},
		{"empty hash", "secret1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.hash))
		})
	}
}

func TestIsHashed(t *testing.T) {
	assert.False(t, IsHashed("plaintext"))
	assert.False(t, IsHashed(""))
	assert.True(t, IsHashed("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsHashed("$2b$10$abcdefghijklmnopqrstuv"))
}
