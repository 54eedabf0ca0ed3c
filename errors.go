package coinaddr

import "errors"

var (
	// ErrUnknownCurrency is returned when an identifier matches no
	// catalog entry by name or ticker.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownValidator is returned when a currency names a validator
	// algorithm that is not registered.
	ErrUnknownValidator = errors.New("unknown validator algorithm")

	// ErrInvalidEncoding is returned when the address input is not
	// ASCII and cannot be validated at all.
	ErrInvalidEncoding = errors.New("address is not ascii")
)
