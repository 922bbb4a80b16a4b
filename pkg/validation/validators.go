package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PasswordPolicyMessage is the user-facing description of the password rules.
const PasswordPolicyMessage = "Password must be at least 8 characters and include an uppercase letter, a lowercase letter, a number, and a special character"

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("strong_password", StrongPassword)
}

// StrongPassword validates the registration password policy: minimum 8
// characters with at least one uppercase letter, one lowercase letter, one
// digit, and one special character.
func StrongPassword(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if len(val) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range val {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
