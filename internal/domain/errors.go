package domain

import "errors"

// Error kinds surfaced by the services. The HTTP layer maps them to status
// codes with errors.Is; services wrap them with context via fmt.Errorf("%w").
var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("access denied")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrCardOperation     = errors.New("card operation not allowed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCrypto            = errors.New("crypto failure")
)
