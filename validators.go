package coinaddr

import (
	"github.com/CodeContributions/coinaddr/validator/base58check"
	"github.com/CodeContributions/coinaddr/validator/ethereum"
)

// Registered validator algorithm names, as referenced by
// Currency.Validator.
const (
	AlgorithmBase58Check = "Base58Check"
	AlgorithmEthereum    = "Ethereum"
)

// Validator is the capability set shared by all validation algorithms.
// ValidateAddress returns nil for a well formed, checksum-correct
// address; the error otherwise describes the defect. Network is only
// meaningful for valid addresses and is best-effort otherwise.
type Validator interface {
	ValidateAddress() error
	Network() Network
}

type base58CheckValidator struct {
	request *ValidationRequest
}

func newBase58CheckValidator(request *ValidationRequest) Validator {
	return &base58CheckValidator{request: request}
}

func (v *base58CheckValidator) ValidateAddress() error {
	return base58check.ValidateAddress(string(v.request.address), v.request.Charset(), v.request.VersionBytes())
}

func (v *base58CheckValidator) Network() Network {
	networks := make(map[string][]byte, len(v.request.currency.Networks))
	for label, versions := range v.request.currency.Networks {
		networks[string(label)] = versions
	}

	label, ok := base58check.Network(string(v.request.address), v.request.Charset(), networks)
	if !ok {
		return NetworkUnknown
	}
	return Network(label)
}

type ethereumValidator struct {
	request *ValidationRequest
}

func newEthereumValidator(request *ValidationRequest) Validator {
	return &ethereumValidator{request: request}
}

func (v *ethereumValidator) ValidateAddress() error {
	return ethereum.ValidateAddress(string(v.request.address))
}

func (v *ethereumValidator) Network() Network {
	return Network(ethereum.NetworkLabel)
}

func init() {
	Validators.Register(AlgorithmBase58Check, newBase58CheckValidator)
	Validators.Register(AlgorithmEthereum, newEthereumValidator)
}
