package coinaddr

// RippleCharset is ripple's reordered base58 alphabet.
const RippleCharset = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var builtinCurrencies = []Currency{
	{Name: "bitcoin", Ticker: "btc", Validator: AlgorithmBase58Check,
		Networks: map[Network]VersionBytes{NetworkMain: {0x00, 0x05}, NetworkTest: {0x6f, 0xc4}}},
	{Name: "bitcoin-cash", Ticker: "bch", Validator: AlgorithmBase58Check,
		Networks: map[Network]VersionBytes{NetworkMain: {0x00, 0x05}, NetworkTest: {0x6f, 0xc4}}},
	{Name: "litecoin", Ticker: "ltc", Validator: AlgorithmBase58Check,
		Networks: map[Network]VersionBytes{NetworkMain: {0x30, 0x05}, NetworkTest: {0x6f, 0xc4}}},
	{Name: "dogecoin", Ticker: "doge", Validator: AlgorithmBase58Check,
		Networks: map[Network]VersionBytes{NetworkMain: {0x1e, 0x16}, NetworkTest: {0x71, 0xc4}}},
	{Name: "dashcoin", Ticker: "dash", Validator: AlgorithmBase58Check,
		Networks: map[Network]VersionBytes{NetworkMain: {0x4c, 0x10}, NetworkTest: {0x8c, 0x13}}},
	{Name: "neocoin", Ticker: "neo", Validator: AlgorithmBase58Check,
		Networks: map[Network]VersionBytes{NetworkBoth: {0x17}}},
	{Name: "ripple", Ticker: "xrp", Validator: AlgorithmBase58Check, Charset: RippleCharset,
		Networks: map[Network]VersionBytes{NetworkMain: {0x00, 0x05}}},
	{Name: "ethereum", Ticker: "eth", Validator: AlgorithmEthereum,
		Networks: map[Network]VersionBytes{NetworkBoth: {}}},
	{Name: "ethereum-classic", Ticker: "etc", Validator: AlgorithmEthereum,
		Networks: map[Network]VersionBytes{NetworkBoth: {}}},
	{Name: "ether-zero", Ticker: "etz", Validator: AlgorithmEthereum,
		Networks: map[Network]VersionBytes{NetworkBoth: {}}},
}

func init() {
	for i := range builtinCurrencies {
		if err := Currencies.Register(&builtinCurrencies[i]); err != nil {
			panic(err)
		}
	}
}
