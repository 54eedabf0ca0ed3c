package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeContributions/coinaddr/cmd/coinaddr/commands"
)

func CmdCoinaddr() *cobra.Command {
	var verbosity int
	var configPath string
	cmd := &cobra.Command{
		Use:          "coinaddr",
		Short:        "Validate cryptocurrency addresses",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			commands.ConfigureLogger(verbosity)
			return commands.LoadCurrencies(configPath)
		},
	}
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Set verbosity (-v, -vv, -vvv)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a currencies config file")

	cmd.AddCommand(commands.CmdValidate())
	cmd.AddCommand(commands.CmdCurrencies())
	return cmd
}

func main() {
	if err := CmdCoinaddr().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
