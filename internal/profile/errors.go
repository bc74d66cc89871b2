package profile

import "errors"

var (
	// ErrProfileNotFound is returned by stores when no record exists for
	// an identity.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrBankNotFound is returned when an operation names a bank the
	// profile does not have. This always propagates to the caller.
	ErrBankNotFound = errors.New("bank not found")
)
