package validation_test

import (
	"testing"

	"careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestStrongPassword(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes present", "Sup3r$ecret", true},
		{"too short", "Ab1$xyz", false},
		{"no uppercase", "sup3r$ecret", false},
		{"no lowercase", "SUP3R$ECRET", false},
		{"no digit", "Super$ecret", false},
		{"no special", "Sup3rSecret", false},
		{"empty", "", false},
		{"exactly eight", "Ab1$efgh", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Var(tc.password, "strong_password")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
