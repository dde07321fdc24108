package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMobileNo(t *testing.T) {
	valid := []string{"09171234567", "09998887766", "00000000000"}
	for _, mobileNo := range valid {
		assert.NoError(t, ValidateMobileNo(mobileNo), mobileNo)
	}

	invalid := []string{
		"",
		"9171234567",    // ten digits, no leading zero
		"091712345678",  // twelve digits
		"0917123456",    // ten digits
		"19171234567",   // leading one
		"0917abc4567",   // letters
		"0917 123 4567", // spaces
		"+639171234567", // international format
	}
	for _, mobileNo := range invalid {
		assert.ErrorIs(t, ValidateMobileNo(mobileNo), ErrInvalidMobileNumber, mobileNo)
	}
}

func TestAccountCanAuthenticate(t *testing.T) {
	account := &Account{IsActive: true}
	assert.True(t, account.CanAuthenticate())

	assert.False(t, (&Account{IsActive: false}).CanAuthenticate())
	assert.False(t, (&Account{IsActive: true, IsBlocked: true}).CanAuthenticate())
	assert.False(t, (&Account{IsActive: true, IsDeleted: true}).CanAuthenticate())
}
