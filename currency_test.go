package coinaddr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	coinaddr "github.com/CodeContributions/coinaddr"
)

func TestCatalogGet(t *testing.T) {
	byName, ok := coinaddr.Currencies.Get("bitcoin")
	require.True(t, ok)
	byTicker, ok := coinaddr.Currencies.Get("btc")
	require.True(t, ok)
	require.Equal(t, byName.Name, byTicker.Name)

	upper, ok := coinaddr.Currencies.Get("Bitcoin")
	require.True(t, ok)
	require.Equal(t, "bitcoin", upper.Name)

	_, ok = coinaddr.Currencies.Get("xyz_unknown")
	require.False(t, ok)
}

func TestCatalogRegisterLastWins(t *testing.T) {
	catalog := coinaddr.NewCatalog()
	require.NoError(t, catalog.Register(&coinaddr.Currency{
		Name:      "testcoin",
		Ticker:    "tst",
		Validator: coinaddr.AlgorithmBase58Check,
		Networks:  map[coinaddr.Network]coinaddr.VersionBytes{coinaddr.NetworkMain: {0x00}},
	}))
	require.NoError(t, catalog.Register(&coinaddr.Currency{
		Name:      "testcoin",
		Ticker:    "tst",
		Validator: coinaddr.AlgorithmEthereum,
		Networks:  map[coinaddr.Network]coinaddr.VersionBytes{coinaddr.NetworkBoth: {}},
	}))

	currency, ok := catalog.Get("tst")
	require.True(t, ok)
	require.Equal(t, coinaddr.AlgorithmEthereum, currency.Validator)
}

func TestCatalogRegisterValidation(t *testing.T) {
	catalog := coinaddr.NewCatalog()
	require.Error(t, catalog.Register(&coinaddr.Currency{Ticker: "tst", Validator: "Base58Check"}))
	require.Error(t, catalog.Register(&coinaddr.Currency{Name: "testcoin", Validator: "Base58Check"}))
	require.Error(t, catalog.Register(&coinaddr.Currency{Name: "testcoin", Ticker: "tst"}))
}

// Mutating a currency obtained from the catalog, or the one passed to
// Register, must not reach the stored entry.
func TestCatalogEntriesNotAliased(t *testing.T) {
	catalog := coinaddr.NewCatalog()
	registered := &coinaddr.Currency{
		Name:      "testcoin",
		Ticker:    "tst",
		Validator: coinaddr.AlgorithmBase58Check,
		Networks:  map[coinaddr.Network]coinaddr.VersionBytes{coinaddr.NetworkMain: {0x00, 0x05}},
	}
	require.NoError(t, catalog.Register(registered))
	registered.Networks[coinaddr.NetworkMain][0] = 0x42
	registered.Networks[coinaddr.NetworkTest] = coinaddr.VersionBytes{0x6f}

	fetched, ok := catalog.Get("tst")
	require.True(t, ok)
	require.Equal(t, map[coinaddr.Network]coinaddr.VersionBytes{coinaddr.NetworkMain: {0x00, 0x05}}, fetched.Networks)

	fetched.Networks[coinaddr.NetworkMain][1] = 0x42
	delete(fetched.Networks, coinaddr.NetworkMain)

	again, ok := catalog.Get("tst")
	require.True(t, ok)
	require.Equal(t, map[coinaddr.Network]coinaddr.VersionBytes{coinaddr.NetworkMain: {0x00, 0x05}}, again.Networks)
}

func TestCatalogAllSorted(t *testing.T) {
	currencies := coinaddr.Currencies.All()
	require.NotEmpty(t, currencies)
	for i := 1; i < len(currencies); i++ {
		require.Less(t, currencies[i-1].Name, currencies[i].Name)
	}
}

func TestCurrencyVersionBytes(t *testing.T) {
	currency, ok := coinaddr.Currencies.Get("btc")
	require.True(t, ok)
	require.Equal(t, []byte{0x00, 0x05, 0x6f, 0xc4}, currency.VersionBytes())
}

func TestCurrencyYAML(t *testing.T) {
	raw := `
name: testcoin
ticker: tst
validator: Base58Check
networks:
  main: [48, 5]
  test: [111, 196]
`
	var currency coinaddr.Currency
	require.NoError(t, yaml.Unmarshal([]byte(raw), &currency))
	require.Equal(t, "testcoin", currency.Name)
	require.Equal(t, coinaddr.VersionBytes{0x30, 0x05}, currency.Networks[coinaddr.NetworkMain])
	require.Equal(t, coinaddr.VersionBytes{0x6f, 0xc4}, currency.Networks[coinaddr.NetworkTest])

	var bad coinaddr.Currency
	err := yaml.Unmarshal([]byte("networks:\n  main: [256]\n"), &bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "version byte out of range")
}
