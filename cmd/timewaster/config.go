package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-timewaster/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the configuration in effect after files, TIMEWASTER_* environment
variables and flags are applied.

Examples:
  timewaster config
  timewaster config --default > ~/.timewaster/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := loadConfig()
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
