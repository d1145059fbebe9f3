package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSignup(t *testing.T) {
	assert.ErrorIs(t, checkSignup(false, Credentials{Password: "long enough"}), ErrSignupDisabled)
	assert.ErrorIs(t, checkSignup(true, Credentials{Password: "12345"}), ErrWeakPassword)
	assert.NoError(t, checkSignup(true, Credentials{Password: "123456"}))

	// counted in characters, not bytes
	assert.ErrorIs(t, checkSignup(true, Credentials{Password: strings.Repeat("é", 5)}), ErrWeakPassword)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "reader@example.com", normalizeEmail("  Reader@Example.COM "))
}

func TestSentinelTexts(t *testing.T) {
	assert.Equal(t, "Invalid login credentials", ErrInvalidCredentials.Error())
	assert.Equal(t, "User already registered", ErrUserExists.Error())
	assert.Equal(t, "Password should be at least 6 characters", ErrWeakPassword.Error())
}
