package auth

import (
	"testing"

	"palengke/config"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestHasher(t *testing.T, strength *config.PasswordStrengthConfig) service.PasswordHasher {
	t.Helper()

	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: strength,
	}

	return NewBcryptHasher(cfg)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := createTestHasher(t, nil)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Check("correct horse battery", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := createTestHasher(t, nil)

	first, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	second, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := createTestHasher(t, &config.PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      72,
		RequireNumbers: true,
	})

	assert.NoError(t, hasher.ValidatePasswordStrength("long enough and has a 7"))

	err := hasher.ValidatePasswordStrength("")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	err = hasher.ValidatePasswordStrength("short1")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	err = hasher.ValidatePasswordStrength("long enough but no digits")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}
