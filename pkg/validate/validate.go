package validate

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var panRe = regexp.MustCompile(`^[0-9]{16}$`)

var v = validator.New()

// IsPAN reports whether s is a 16-digit card number.
func IsPAN(s string) bool {
	return panRe.MatchString(s)
}

// Amount parses a money amount: positive decimal with at most two fraction
// digits.
func Amount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount scale must not exceed 2")
	}
	return d, nil
}

// Struct validates a dto against its `validate` tags and returns a
// field → message map, or nil when the value is valid.
func Struct(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	fieldErrors := make(map[string]string, len(errs))
	for _, fe := range errs {
		fieldErrors[fe.Field()] = message(fe)
	}
	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
