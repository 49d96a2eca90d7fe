package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsPAN(t *testing.T) {
	tests := []struct {
		name  string
		pan   string
		valid bool
	}{
		{"valid", "1234567812345678", true},
		{"too short", "123456781234567", false},
		{"too long", "12345678123456789", false},
		{"letters", "12345678abcd5678", false},
		{"empty", "", false},
		{"with spaces", "1234 5678 1234 5678", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPAN(tt.pan))
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{"integer", "100", "100", false},
		{"two decimals", "100.50", "100.5", false},
		{"one decimal", "0.1", "0.1", false},
		{"zero", "0", "", true},
		{"negative", "-5", "", true},
		{"three decimals", "1.001", "", true},
		{"garbage", "abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Amount(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, d.Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}

func TestStruct(t *testing.T) {
	type registerForm struct {
		FirstName string `validate:"required,min=1,max=50"`
		LastName  string `validate:"required,min=1,max=50"`
		Password  string `validate:"required,min=6"`
	}

	t.Run("valid", func(t *testing.T) {
		errs := Struct(registerForm{FirstName: "Ivan", LastName: "Petrov", Password: "secret1"})
		assert.Nil(t, errs)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := Struct(registerForm{Password: "short"})
		assert.Equal(t, "is required", errs["FirstName"])
		assert.Equal(t, "is required", errs["LastName"])
		assert.Equal(t, "must be at least 6 characters", errs["Password"])
	})
}
