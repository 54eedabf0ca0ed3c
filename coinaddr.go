// Package coinaddr validates cryptocurrency addresses against
// currency-specific encoding and checksum rules.
//
//	result, err := coinaddr.Validate("btc", "1BoatSLRHtKNngkdXEeobR76b53LETtpyT")
//	// result.Valid == true, result.Network == coinaddr.NetworkMain
//
// Currencies are resolved from the package level Currencies catalog by
// name or ticker and dispatched to a validation algorithm registered in
// Validators. A malformed address is the expected outcome for bad user
// input and is reported as a Valid=false result; errors are reserved
// for requests the library cannot process at all.
package coinaddr

import "fmt"

// Validate validates address for the currency identified by name or
// ticker.
func Validate(currency string, address string) (ValidationResult, error) {
	return ValidateBytes(currency, []byte(address))
}

// ValidateBytes is Validate for addresses already held as raw bytes.
func ValidateBytes(currency string, address []byte) (ValidationResult, error) {
	resolved, ok := Currencies.Get(currency)
	if !ok {
		return ValidationResult{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}

	request, err := NewValidationRequest(resolved, address)
	if err != nil {
		return ValidationResult{}, err
	}
	return request.Execute()
}
