package coinaddr

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Network is a network label an address may belong to.
type Network string

const (
	NetworkMain = Network("main")
	NetworkTest = Network("test")
	// NetworkBoth is used by schemes whose addresses are not
	// network-versioned and exist on main and test alike.
	NetworkBoth = Network("both")
	// NetworkUnknown means the network could not be determined. Only
	// expected alongside invalid results.
	NetworkUnknown = Network("")
)

// VersionBytes is a set of accepted leading version bytes. In YAML it
// is written as a sequence of integers, as yaml.v3 would otherwise
// demand base64 for a byte slice.
type VersionBytes []byte

func (v *VersionBytes) UnmarshalYAML(node *yaml.Node) error {
	var raw []int
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(VersionBytes, len(raw))
	for i, b := range raw {
		if b < 0 || b > 0xff {
			return fmt.Errorf("version byte out of range: %d", b)
		}
		out[i] = byte(b)
	}
	*v = out
	return nil
}

func (v VersionBytes) MarshalYAML() (interface{}, error) {
	raw := make([]int, len(v))
	for i, b := range v {
		raw[i] = int(b)
	}
	return raw, nil
}

// Currency describes how addresses of one cryptocurrency are validated.
type Currency struct {
	Name   string `yaml:"name"`
	Ticker string `yaml:"ticker"`
	// Networks maps a network label to the version bytes accepted on it.
	Networks map[Network]VersionBytes `yaml:"networks"`
	// Charset overrides the base58 alphabet for currencies, like
	// ripple, that reorder it.
	Charset string `yaml:"charset,omitempty"`
	// Validator names the registered validation algorithm to apply.
	Validator string `yaml:"validator"`
}

// networkLabels returns the currency's network labels in sorted order,
// so that version byte flattening and network resolution stay
// deterministic.
func (c *Currency) networkLabels() []Network {
	labels := make([]Network, 0, len(c.Networks))
	for label := range c.Networks {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// VersionBytes returns every version byte accepted across the
// currency's networks.
func (c *Currency) VersionBytes() []byte {
	var versions []byte
	for _, label := range c.networkLabels() {
		versions = append(versions, c.Networks[label]...)
	}
	return versions
}

// clone returns a deep copy, so that catalog entries are never aliased
// by requests or results.
func (c *Currency) clone() Currency {
	cp := *c
	if c.Networks != nil {
		cp.Networks = make(map[Network]VersionBytes, len(c.Networks))
		for label, versions := range c.Networks {
			cp.Networks[label] = append(VersionBytes(nil), versions...)
		}
	}
	return cp
}

// Catalog is a registry of currencies addressable by name or ticker.
type Catalog struct {
	mu       sync.RWMutex
	byName   map[string]*Currency
	byTicker map[string]*Currency
}

func NewCatalog() *Catalog {
	return &Catalog{
		byName:   map[string]*Currency{},
		byTicker: map[string]*Currency{},
	}
}

// Register adds or replaces a currency. Later registrations win, so
// that currencies loaded from configuration can override built-ins.
func (c *Catalog) Register(currency *Currency) error {
	if currency.Name == "" || currency.Ticker == "" {
		return fmt.Errorf("currency must have a name and a ticker")
	}
	if currency.Validator == "" {
		return fmt.Errorf("currency %s must name a validator algorithm", currency.Name)
	}

	stored := currency.clone()
	c.mu.Lock()
	c.byName[strings.ToLower(stored.Name)] = &stored
	c.byTicker[strings.ToLower(stored.Ticker)] = &stored
	c.mu.Unlock()

	log.WithField("currency", stored.Name).Debug("registered currency")
	return nil
}

// Get resolves a currency by name or ticker, case-insensitively.
func (c *Catalog) Get(identifier string) (Currency, bool) {
	key := strings.ToLower(identifier)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if currency, ok := c.byName[key]; ok {
		return currency.clone(), true
	}
	if currency, ok := c.byTicker[key]; ok {
		return currency.clone(), true
	}
	return Currency{}, false
}

// All returns the registered currencies sorted by name.
func (c *Catalog) All() []Currency {
	c.mu.RLock()
	currencies := make([]Currency, 0, len(c.byName))
	for _, currency := range c.byName {
		currencies = append(currencies, currency.clone())
	}
	c.mu.RUnlock()

	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Name < currencies[j].Name })
	return currencies
}

// Currencies is the default catalog, pre-populated with the built-in
// currency table.
var Currencies = NewCatalog()
