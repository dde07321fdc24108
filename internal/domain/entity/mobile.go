package entity

import "palengke/internal/errors"

// ErrInvalidMobileNumber is returned when a mobile number fails format validation.
var ErrInvalidMobileNumber = errors.New("mobile number must be 11 digits starting with 0")

const mobileNoLength = 11

// ValidateMobileNo checks that a mobile number is the account-credential
// format: numeric only, leading zero, exactly 11 digits (e.g. "09171234567").
func ValidateMobileNo(mobileNo string) error {
	if len(mobileNo) != mobileNoLength {
		return ErrInvalidMobileNumber
	}
	if mobileNo[0] != '0' {
		return ErrInvalidMobileNumber
	}
	for _, c := range mobileNo {
		if c < '0' || c > '9' {
			return ErrInvalidMobileNumber
		}
	}

	return nil
}
