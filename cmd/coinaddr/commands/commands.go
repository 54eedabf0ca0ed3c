package commands

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	coinaddr "github.com/CodeContributions/coinaddr"
	"github.com/CodeContributions/coinaddr/config"
)

func ConfigureLogger(verbosity int) {
	switch {
	case verbosity <= 0:
		logrus.SetLevel(logrus.WarnLevel)
	case verbosity == 1:
		logrus.SetLevel(logrus.InfoLevel)
	case verbosity == 2:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}
}

// LoadCurrencies merges user configured currencies into the catalog.
func LoadCurrencies(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	return cfg.Apply(coinaddr.Currencies)
}

type resultView struct {
	Name    string           `json:"name"`
	Ticker  string           `json:"ticker"`
	Address string           `json:"address"`
	Valid   bool             `json:"valid"`
	Network coinaddr.Network `json:"network"`
}

func CmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <currency> <address>",
		Short: "Validate an address for a currency, identified by name or ticker",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := coinaddr.Validate(args[0], args[1])
			if err != nil {
				return fmt.Errorf("could not validate address: %w", err)
			}

			view := resultView{
				Name:    result.Name,
				Ticker:  result.Ticker,
				Address: string(result.Address),
				Valid:   result.Valid,
				Network: result.Network,
			}
			bz, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(bz))
			return nil
		},
	}
	return cmd
}

type currencyView struct {
	Name      string                     `json:"name"`
	Ticker    string                     `json:"ticker"`
	Validator string                     `json:"validator"`
	Networks  map[coinaddr.Network][]int `json:"networks"`
}

func networksView(networks map[coinaddr.Network]coinaddr.VersionBytes) map[coinaddr.Network][]int {
	view := make(map[coinaddr.Network][]int, len(networks))
	for label, versions := range networks {
		raw := make([]int, len(versions))
		for i, b := range versions {
			raw[i] = int(b)
		}
		view[label] = raw
	}
	return view
}

func CmdCurrencies() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List the currencies in the catalog",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := []currencyView{}
			for _, currency := range coinaddr.Currencies.All() {
				views = append(views, currencyView{
					Name:      currency.Name,
					Ticker:    currency.Ticker,
					Validator: currency.Validator,
					Networks:  networksView(currency.Networks),
				})
			}
			bz, err := json.MarshalIndent(views, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(bz))
			return nil
		},
	}
	return cmd
}
