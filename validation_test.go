package coinaddr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	coinaddr "github.com/CodeContributions/coinaddr"
)

func TestRequestRejectsNonASCII(t *testing.T) {
	currency, ok := coinaddr.Currencies.Get("btc")
	require.True(t, ok)

	_, err := coinaddr.NewValidationRequest(currency, []byte{'1', 'B', 0xc3, 0xa9})
	require.Error(t, err)
	require.True(t, errors.Is(err, coinaddr.ErrInvalidEncoding))
}

func TestRequestAddressIsCopied(t *testing.T) {
	currency, ok := coinaddr.Currencies.Get("btc")
	require.True(t, ok)

	input := []byte("1BoatSLRHtKNngkdXEeobR76b53LETtpyT")
	request, err := coinaddr.NewValidationRequest(currency, input)
	require.NoError(t, err)

	// neither mutating the input nor a returned copy may affect the request
	input[0] = 'X'
	first := request.Address()
	first[0] = 'Y'
	require.Equal(t, []byte("1BoatSLRHtKNngkdXEeobR76b53LETtpyT"), request.Address())
}

func TestRequestVersionBytesFlattened(t *testing.T) {
	currency, ok := coinaddr.Currencies.Get("btc")
	require.True(t, ok)

	request, err := coinaddr.NewValidationRequest(currency, []byte("1BoatSLRHtKNngkdXEeobR76b53LETtpyT"))
	require.NoError(t, err)
	// main before test, in sorted label order
	require.Equal(t, []byte{0x00, 0x05, 0x6f, 0xc4}, request.VersionBytes())
}

func TestExecuteUnknownValidator(t *testing.T) {
	currency := coinaddr.Currency{
		Name:      "fakecoin",
		Ticker:    "fake",
		Validator: "NoSuchAlgorithm",
		Networks:  map[coinaddr.Network]coinaddr.VersionBytes{coinaddr.NetworkMain: {0x00}},
	}
	request, err := coinaddr.NewValidationRequest(currency, []byte("1BoatSLRHtKNngkdXEeobR76b53LETtpyT"))
	require.NoError(t, err)

	_, err = request.Execute()
	require.Error(t, err)
	require.True(t, errors.Is(err, coinaddr.ErrUnknownValidator))
}
