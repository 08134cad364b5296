package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollhigh/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way play does, applies --difficulty,
validates it and prints the result as YAML.

Search order when --config is not given:
  ~/.rollhigh/configs/roller.yaml
  ./configs/roller.yaml
  built-in defaults

Examples:
  rollhigh config
  rollhigh config --difficulty easy
  rollhigh config --defaults > configs/roller.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented default file instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := mustLogger(os.Stderr)
	cfg := mustConfig(logger)

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
