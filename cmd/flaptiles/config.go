package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flaptiles/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration, a starting point for
~/.flaptiles/configs/flaptiles.yaml or ./configs/flaptiles.yaml.

With --resolved, prints the effective configuration after the config file
and the global flags were applied.

Examples:
  flaptiles config > configs/flaptiles.yaml
  flaptiles config --resolved --instances 9 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	fmt.Printf("# source: %s\n", a.source)
	_, err = os.Stdout.Write(out)
	return err
}
