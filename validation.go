package coinaddr

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ValidationRequest binds a resolved currency to the address bytes
// under validation. It is immutable once constructed and discarded
// after Execute returns.
type ValidationRequest struct {
	currency Currency
	address  []byte
}

// NewValidationRequest builds a request for validating address against
// currency. The address must be ASCII; anything else fails with
// ErrInvalidEncoding before any decoding is attempted.
func NewValidationRequest(currency Currency, address []byte) (*ValidationRequest, error) {
	for i, b := range address {
		if b > 0x7f {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidEncoding, b, i)
		}
	}

	addr := make([]byte, len(address))
	copy(addr, address)
	return &ValidationRequest{currency: currency, address: addr}, nil
}

// Currency returns the resolved currency under validation.
func (r *ValidationRequest) Currency() Currency {
	return r.currency
}

// Address returns a copy of the address bytes.
func (r *ValidationRequest) Address() []byte {
	addr := make([]byte, len(r.address))
	copy(addr, r.address)
	return addr
}

// Charset returns the currency's base58 alphabet override, if any.
func (r *ValidationRequest) Charset() string {
	return r.currency.Charset
}

// VersionBytes returns every version byte accepted across the
// currency's networks.
func (r *ValidationRequest) VersionBytes() []byte {
	return r.currency.VersionBytes()
}

// Execute resolves the currency's validator, runs it, and packages the
// outcome. A malformed address is a Valid=false result, not an error;
// Execute fails only when the currency names an unregistered validator.
func (r *ValidationRequest) Execute() (ValidationResult, error) {
	factory, ok := Validators.Get(r.currency.Validator)
	if !ok {
		return ValidationResult{}, fmt.Errorf("%w: %s (currency %s)",
			ErrUnknownValidator, r.currency.Validator, r.currency.Name)
	}

	validator := factory(r)
	err := validator.ValidateAddress()
	if err != nil {
		log.WithField("currency", r.currency.Name).WithError(err).Debug("address failed validation")
	}

	return ValidationResult{
		Name:    r.currency.Name,
		Ticker:  r.currency.Ticker,
		Address: r.Address(),
		Valid:   err == nil,
		Network: validator.Network(),
	}, nil
}

// ValidationResult is the immutable outcome of one validation call.
// Address holds the original input bytes, unmodified.
type ValidationResult struct {
	Name    string
	Ticker  string
	Address []byte
	Valid   bool
	Network Network
}
