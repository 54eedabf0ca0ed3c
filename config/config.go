// Package config loads user defined currencies from a YAML file and
// registers them into the coinaddr catalog.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	coinaddr "github.com/CodeContributions/coinaddr"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "COINADDR_CONFIG"

// Config is the file shape: a list of currencies in the same form as
// the built-in table. Registered currencies override built-ins with the
// same name or ticker.
type Config struct {
	Currencies []coinaddr.Currency `yaml:"currencies"`
}

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("coinaddr")
	v.SetConfigType("yaml")

	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.coinaddr")
	return v
}

// Load reads the config at path, or searches the default locations when
// path is empty. A missing config is not an error, just an empty one.
func Load(path string) (*Config, error) {
	v := getViper()
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && path == "" {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// viper cannot decode into the yaml-tagged structs directly, so
	// re-serialize the settings map and parse again with yaml.
	bz, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(bz, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", v.ConfigFileUsed(), err)
	}
	return cfg, nil
}

// Apply registers the configured currencies into catalog.
func (c *Config) Apply(catalog *coinaddr.Catalog) error {
	for i := range c.Currencies {
		if err := catalog.Register(&c.Currencies[i]); err != nil {
			return fmt.Errorf("invalid currency config: %w", err)
		}
	}
	return nil
}
